// Package content holds the localized site data the frontend renders. The
// portfolio has no persistence layer; content ships with the binary and
// changes go through a normal deploy.
package content

import "portfolio-backend/internal/domain"

var catalog = map[string]*domain.PortfolioContent{
	"en": {
		Language: "en",
		Hero: domain.Hero{
			Greeting: "Hi, I'm",
			Name:     "Deniz Arca",
			Title:    "Full-Stack Developer",
			Tagline:  "I build web and mobile products end to end, from pixel to pipeline.",
		},
		About: domain.About{
			Paragraphs: []string{
				"I'm a software developer focused on web applications, mobile apps and applied machine learning. I enjoy owning features across the whole stack: interface, API and infrastructure.",
				"Outside of client work I maintain a handful of open-source tools and write about what I learn along the way.",
			},
			Location:  "Izmir, Turkey",
			Languages: []string{"Turkish (native)", "English (fluent)"},
		},
		Experience: []domain.ExperienceEntry{
			{
				Role:    "Senior Software Developer",
				Company: "Freelance",
				Period:  "2022 — Present",
				Highlights: []string{
					"Delivered web and mobile products for clients in e-commerce, health and education",
					"Designed REST backends and CI pipelines used in production daily",
				},
				Technologies: []string{"Go", "TypeScript", "React", "React Native", "PostgreSQL"},
			},
			{
				Role:    "Software Developer",
				Company: "Aegean Software House",
				Period:  "2019 — 2022",
				Highlights: []string{
					"Built customer-facing dashboards and internal tooling",
					"Introduced automated testing that cut regression reports by half",
				},
				Technologies: []string{"JavaScript", "Node.js", "Docker"},
			},
			{
				Role:    "Junior Developer",
				Company: "Campus Innovation Lab",
				Period:  "2017 — 2019",
				Highlights: []string{
					"Prototyped ML-assisted study tools with the research group",
				},
				Technologies: []string{"Python", "TensorFlow"},
			},
		},
		Skills: []domain.SkillGroup{
			{Name: "Frontend", Skills: []string{"React", "Next.js", "TypeScript", "Tailwind CSS", "Three.js"}},
			{Name: "Backend", Skills: []string{"Go", "Node.js", "PostgreSQL", "Redis", "REST APIs"}},
			{Name: "Mobile", Skills: []string{"React Native", "Expo"}},
			{Name: "AI / ML", Skills: []string{"Python", "PyTorch", "scikit-learn"}},
		},
		Projects: []domain.Project{
			{
				Name:        "Shelfwise",
				Description: "Inventory and ordering platform for independent bookstores, with a mobile companion app.",
				Tags:        []string{"web-development", "mobile-application"},
				RepoURL:     "https://github.com/denizarca/shelfwise",
			},
			{
				Name:        "Crowdpulse",
				Description: "Realtime sentiment dashboard that clusters social feedback around product launches.",
				Tags:        []string{"ai-ml", "web-development"},
				LiveURL:     "https://crowdpulse.dev",
			},
			{
				Name:        "Trailkit",
				Description: "Offline-first hiking log with route sharing and elevation analytics.",
				Tags:        []string{"mobile-application"},
				RepoURL:     "https://github.com/denizarca/trailkit",
			},
			{
				Name:        "This site",
				Description: "The portfolio you are looking at: client-rendered frontend backed by this Go service.",
				Tags:        []string{"web-development"},
				RepoURL:     "https://github.com/denizarca/portfolio-backend",
			},
		},
		Quotes: []domain.Quote{
			{Text: "Simplicity is the soul of efficiency.", Author: "Austin Freeman"},
			{Text: "Programs must be written for people to read, and only incidentally for machines to execute.", Author: "Harold Abelson"},
			{Text: "The best way to predict the future is to invent it.", Author: "Alan Kay"},
		},
		Contact: domain.ContactChannels{
			Email:    "hello@denizarca.dev",
			GitHub:   "https://github.com/denizarca",
			LinkedIn: "https://linkedin.com/in/denizarca",
			Location: "Izmir, Turkey",
		},
	},
	"tr": {
		Language: "tr",
		Hero: domain.Hero{
			Greeting: "Merhaba, ben",
			Name:     "Deniz Arca",
			Title:    "Full-Stack Geliştirici",
			Tagline:  "Web ve mobil ürünleri uçtan uca geliştiriyorum; pikselden altyapıya.",
		},
		About: domain.About{
			Paragraphs: []string{
				"Web uygulamaları, mobil uygulamalar ve uygulamalı makine öğrenmesi üzerine çalışan bir yazılım geliştiricisiyim. Arayüzden API'ye ve altyapıya kadar tüm katmanlarda sorumluluk almayı seviyorum.",
				"Müşteri projelerinin dışında birkaç açık kaynak aracın bakımını yapıyor ve öğrendiklerimi yazıyorum.",
			},
			Location:  "İzmir, Türkiye",
			Languages: []string{"Türkçe (ana dil)", "İngilizce (akıcı)"},
		},
		Experience: []domain.ExperienceEntry{
			{
				Role:    "Kıdemli Yazılım Geliştirici",
				Company: "Serbest",
				Period:  "2022 — Günümüz",
				Highlights: []string{
					"E-ticaret, sağlık ve eğitim alanlarında web ve mobil ürünler teslim ettim",
					"Her gün üretimde kullanılan REST servisleri ve CI hatları tasarladım",
				},
				Technologies: []string{"Go", "TypeScript", "React", "React Native", "PostgreSQL"},
			},
			{
				Role:    "Yazılım Geliştirici",
				Company: "Aegean Software House",
				Period:  "2019 — 2022",
				Highlights: []string{
					"Müşteri panelleri ve şirket içi araçlar geliştirdim",
					"Otomatik testlerle regresyon kayıtlarını yarıya indirdim",
				},
				Technologies: []string{"JavaScript", "Node.js", "Docker"},
			},
			{
				Role:    "Jr. Geliştirici",
				Company: "Kampüs İnovasyon Laboratuvarı",
				Period:  "2017 — 2019",
				Highlights: []string{
					"Araştırma grubuyla makine öğrenmesi destekli çalışma araçları prototipledim",
				},
				Technologies: []string{"Python", "TensorFlow"},
			},
		},
		Skills: []domain.SkillGroup{
			{Name: "Önyüz", Skills: []string{"React", "Next.js", "TypeScript", "Tailwind CSS", "Three.js"}},
			{Name: "Arkayüz", Skills: []string{"Go", "Node.js", "PostgreSQL", "Redis", "REST API"}},
			{Name: "Mobil", Skills: []string{"React Native", "Expo"}},
			{Name: "Yapay Zeka", Skills: []string{"Python", "PyTorch", "scikit-learn"}},
		},
		Projects: []domain.Project{
			{
				Name:        "Shelfwise",
				Description: "Bağımsız kitapçılar için stok ve sipariş platformu, mobil uygulamasıyla birlikte.",
				Tags:        []string{"web-development", "mobile-application"},
				RepoURL:     "https://github.com/denizarca/shelfwise",
			},
			{
				Name:        "Crowdpulse",
				Description: "Ürün lansmanları etrafındaki sosyal geri bildirimi kümeleyen gerçek zamanlı duygu analizi paneli.",
				Tags:        []string{"ai-ml", "web-development"},
				LiveURL:     "https://crowdpulse.dev",
			},
			{
				Name:        "Trailkit",
				Description: "Rota paylaşımı ve yükseklik analizleri sunan, çevrimdışı çalışan yürüyüş günlüğü.",
				Tags:        []string{"mobile-application"},
				RepoURL:     "https://github.com/denizarca/trailkit",
			},
			{
				Name:        "Bu site",
				Description: "Baktığınız portfolyo: bu Go servisiyle beslenen istemci taraflı arayüz.",
				Tags:        []string{"web-development"},
				RepoURL:     "https://github.com/denizarca/portfolio-backend",
			},
		},
		Quotes: []domain.Quote{
			{Text: "Sadelik, verimliliğin ruhudur.", Author: "Austin Freeman"},
			{Text: "Programlar insanlar okusun diye yazılır; makinelerin çalıştırması yalnızca bir ayrıntıdır.", Author: "Harold Abelson"},
			{Text: "Geleceği öngörmenin en iyi yolu onu icat etmektir.", Author: "Alan Kay"},
		},
		Contact: domain.ContactChannels{
			Email:    "hello@denizarca.dev",
			GitHub:   "https://github.com/denizarca",
			LinkedIn: "https://linkedin.com/in/denizarca",
			Location: "İzmir, Türkiye",
		},
	},
}

// ForLanguage returns the content document for the given language code, or
// nil when the language is not in the catalog.
func ForLanguage(lang string) *domain.PortfolioContent {
	return catalog[lang]
}

// Languages lists the catalog's language codes with preferred first.
func Languages(preferred string) []string {
	langs := make([]string, 0, len(catalog))
	if _, ok := catalog[preferred]; ok {
		langs = append(langs, preferred)
	}
	for code := range catalog {
		if code != preferred {
			langs = append(langs, code)
		}
	}
	return langs
}
