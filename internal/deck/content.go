package deck

// Default returns the shipped deck. Each call returns an independent copy.
func Default() *Deck {
	return &Deck{
		Brand: "麦田云端 · 活力广场",
		Hero: Hero{
			Kicker:   "商业计划书 · 创新楼顶经济",
			Title:    "麦田云端",
			Subtitle: "活力广场",
			Tagline:  "将运动与茶歇搬上云端，打造西安“第五立面”社交新标杆。地铁50米直达，下班即开局。",
			Action:   "查看计划书",
			Location: "西安 · 麦田广场 8F",
		},
		Summary: Summary{
			Title: "项目摘要",
			Vision: "本项目是一个创新型楼顶休闲运动空间，旨在解决当前实体经济面临的下行压力。" +
				"通过盘活长期闲置的商业楼顶空间，探索“体育+商场+地铁”的新型实体经济发展路径。" +
				"针对18-35岁年轻群体打造“近距离、可触摸、远离城市喧嚣”的云端静谧场所。",
			Image:     "https://picsum.photos/seed/rooftop/800/600",
			NoteTitle: "活力 · 赋能",
			Note:      "预计首年收入 116-140 万元，创造 50 个大学生创业实践岗位。",
			Space: []SpaceInfo{
				{Label: "总面积", Value: "2000㎡", Sub: "实际可用约1500㎡"},
				{Label: "匹克球场", Value: "1400㎡", Sub: "4个标准场地"},
				{Label: "茶歇空间", Value: "600㎡", Sub: "含休息区、文化工作坊"},
				{Label: "地理位置", Value: "和平门D口", Sub: "步行仅50米"},
			},
		},
		Market: Market{
			Title:        "市场洞察",
			TrendTitle:   "行业趋势与前景 (2025-2030)",
			TrendCaption: "匹克球运动全国市场规模预测 (CAGR 28%)",
			TrendUnit:    "亿元",
			Trend: []TrendPoint{
				{Year: "2024", Value: 5.73},
				{Year: "2025", Value: 8.5},
				{Year: "2026", Value: 12.1},
				{Year: "2027", Value: 15.8},
				{Year: "2028", Value: 18.2},
				{Year: "2029", Value: 20.0},
			},
			SWOT: []SWOTEntry{
				{Letter: "S", Text: "首创楼顶+新中式组合，地利50米。"},
				{Letter: "W", Text: "初期认知度低，受季节性影响。"},
				{Letter: "O", Text: "体育强国政策支持，蓝海竞争少。"},
				{Letter: "T", Text: "大型商业综合体潜在模仿竞争。"},
			},
			AudienceTitle: "目标客群画像",
			Audience: []Share{
				{Name: "白领", Percent: 40},
				{Name: "大学生", Percent: 30},
				{Name: "游客", Percent: 30},
			},
		},
		Products: Products{
			Title: "核心空间与服务",
			Offerings: []Offering{
				{
					Title: "国际标准匹克球场",
					Badge: "1400㎡ 运动区",
					Image: "https://picsum.photos/seed/pickle/800/600",
					Points: []string{
						"4个标准场地，全天候移动棚顶设计",
						"分时租赁：高峰 60元/时，普通 30元/时",
						"配备专业私教、新手教学与趣味赛事",
					},
				},
				{
					Title: "新中式茶歇空间",
					Badge: "600㎡ 休闲区",
					Image: "https://picsum.photos/seed/tea/800/600",
					Points: []string{
						"含开放式茶席、私人包间、文化工作坊",
						"客单价 25-85元，精选陕西名茶饮品",
						"融合养生文化，举办夜间“云端夜话”",
					},
				},
			},
		},
		Finance: Finance{
			Title: "财务预测",
			Highlights: []Highlight{
				{Label: "预计首年收入", Value: "116-140 万"},
				{Label: "5年累计净利", Value: "397-718 万"},
				{Label: "ROA (资产回报率)", Value: "207-310%"},
				{Label: "投资回收期", Value: "1.5 - 3 年"},
			},
			MixTitle: "收入结构占比",
			RevenueMix: []Share{
				{Name: "场地租赁", Percent: 60},
				{Name: "茶饮销售", Percent: 25},
				{Name: "赛事培训", Percent: 10},
				{Name: "会员年费", Percent: 5},
			},
			RevenueTitle: "年度营收情景分析 (万元/年)",
			Revenue: []FinancialMetric{
				{Year: "2025", Conservative: 100, Base: 116, Optimistic: 140},
				{Year: "2026", Conservative: 110, Base: 130, Optimistic: 160},
				{Year: "2027", Conservative: 120, Base: 145, Optimistic: 180},
			},
		},
		Team: Team{
			Title: "核心团队",
			Intro: "由西安体育学院大学生创业团队组成，青春活力与专业背景兼备。",
			Founders: []Founder{
				{
					Name:         "马果雯",
					Role:         "项目负责人",
					Description:  "负责整体协调，西安体育学院2023级学生，具备体育传媒与市场营销背景。",
					Image:        "https://picsum.photos/seed/ma/400/400",
					Achievements: []string{"全国大学生体育新闻写作大赛三等奖", "优秀学生会干部"},
				},
				{
					Name:         "郝希希",
					Role:         "内容创作与社群运营",
					Description:  "擅长内容编写与策划，曾参与多项体育解说赛事。",
					Image:        "https://picsum.photos/seed/hao/400/400",
					Achievements: []string{"陕西省第一届体育解说员大赛二等奖", "理解当代中国英语演讲二等奖"},
				},
				{
					Name:         "张雅婷",
					Role:         "资料收集与图文制作",
					Description:  "负责校验、结构梳理，对非遗文化有浓厚兴趣。",
					Image:        "https://picsum.photos/seed/zhang/400/400",
					Achievements: []string{"大学生职业生涯规划大赛优秀奖", "宪法知识竞赛三等奖"},
				},
			},
		},
		Footer: Footer{
			Title: "开启您的云端活力之旅",
			Body:  "盘活城市闲置楼顶，赋能新兴体育产业。我们在麦田广场8层，期待您的关注。",
			Stats: []Stat{
				{Value: "50+", Caption: "就业岗位"},
				{Value: "5万+", Caption: "年辐射客流"},
				{Value: "10万+", Caption: "宣传覆盖"},
			},
			Copyright: "© 2025 麦田云端 · 活力广场 创业团队. 保留所有权利.",
			Links:     []string{"服务条款", "隐私政策", "联系我们"},
		},
	}
}
