package site

const stylesheet = `
*{box-sizing:border-box;margin:0;padding:0}
html{scroll-behavior:smooth}
body{font-family:system-ui,-apple-system,"PingFang SC","Microsoft YaHei",sans-serif;color:#1e293b;background:#f8fafc;line-height:1.6}
#nav{position:fixed;top:0;left:0;right:0;z-index:10;display:flex;justify-content:space-between;align-items:center;padding:1.25rem 2rem;background:transparent;transition:all .3s}
#nav.scrolled{background:rgba(255,255,255,.95);box-shadow:0 1px 8px rgba(15,23,42,.1);padding:.75rem 2rem}
#nav a{text-decoration:none;color:#475569}
#nav .brand{font-weight:700;font-size:1.25rem;color:#1e293b}
.nav-items{display:flex;gap:1.5rem}
.nav-item.active{color:#2563eb;font-weight:700}
.glyph{margin-right:.35rem}
.section{padding:6rem 2rem;max-width:72rem;margin:0 auto}
.section-home{min-height:90vh;display:flex;align-items:center;justify-content:center;text-align:center;max-width:none;background:linear-gradient(135deg,#1e3a8a,#0f172a);color:#fff}
.kicker{display:inline-block;padding:.25rem 1rem;border-radius:999px;background:rgba(59,130,246,.3);margin-bottom:1.5rem}
.hero h1{font-size:3.5rem;line-height:1.15}
.accent{color:#60a5fa}
.tagline{max-width:40rem;margin:1.5rem auto;color:#cbd5e1}
.actions{display:flex;gap:1.5rem;justify-content:center;align-items:center}
.button{padding:.75rem 2rem;border-radius:999px;background:#2563eb;color:#fff;text-decoration:none;font-weight:700}
.heading{text-align:center;margin-bottom:3rem}
.heading h2{font-size:2rem}
.rule{width:5rem;height:.3rem;background:#2563eb;margin:.75rem auto 0;border-radius:999px}
.grid{display:grid;gap:1.5rem}
.grid.two{grid-template-columns:repeat(auto-fit,minmax(18rem,1fr))}
.grid.three{grid-template-columns:repeat(auto-fit,minmax(16rem,1fr))}
.card{background:#fff;border:1px solid #e2e8f0;border-radius:1rem;padding:1.5rem;margin-bottom:1.5rem}
.card.dark{background:#0f172a;color:#f1f5f9;border-color:#1e293b}
.card.vision{border-left:.3rem solid #2563eb}
.card h3{margin-bottom:.75rem}
.figure{font-size:1.75rem;font-weight:700;color:#2563eb}
.muted{color:#64748b}
.small{font-size:.85rem}
.center{text-align:center}
.photo{width:100%;border-radius:1rem;object-fit:cover;max-height:20rem}
.avatar{width:8rem;height:8rem;border-radius:50%;object-fit:cover}
.badge{display:inline-block;padding:.1rem .75rem;border-radius:999px;background:#dbeafe;color:#1d4ed8;font-size:.8rem}
.role{color:#2563eb;font-weight:600}
ul{padding-left:1.25rem}
.swot{list-style:none;padding:0}
.letter{display:inline-block;width:1.75rem;font-weight:700}
.letter-s{color:#10b981}.letter-w{color:#f97316}.letter-o{color:#3b82f6}.letter-t{color:#a855f7}
.chart svg{width:100%;height:auto}
.chart svg text{font-size:12px;fill:#64748b}
.legend{list-style:none;padding:0;display:flex;flex-wrap:wrap;gap:1rem;margin:.75rem 0}
.dot{display:inline-block;width:.75rem;height:.75rem;border-radius:50%;margin-right:.35rem}
.bar-group{margin-bottom:1rem}
.bar{display:flex;align-items:center;gap:.5rem;margin:.2rem 0}
.bar .fill{display:block;height:.9rem;border-radius:.2rem}
.ring{width:10rem;height:10rem;border-radius:50%;margin:1rem auto;-webkit-mask:radial-gradient(circle,transparent 55%,#000 56%);mask:radial-gradient(circle,transparent 55%,#000 56%)}
.strip{display:flex;height:1rem;border-radius:999px;overflow:hidden}
.strip span{display:block;height:100%}
footer{background:#0f172a;color:#f1f5f9;text-align:center;padding:5rem 2rem 2rem}
.stats{display:flex;justify-content:center;gap:4rem;margin:2.5rem 0}
.stat{display:flex;flex-direction:column}
.legal{display:flex;justify-content:space-between;border-top:1px solid #1e293b;padding-top:1.5rem;color:#64748b;font-size:.85rem}
.legal a{color:#64748b;margin-left:1rem}
`
