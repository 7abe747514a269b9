package main

// Page copy for the Vitrine studio site. Everything below is plain data; the
// behavior units read it but never mutate it.

type Service struct {
	Icon        string
	Title       string
	Description string
}

type Stat struct {
	Target int
	Suffix string
	Label  string
}

type Testimonial struct {
	Quote   string
	Author  string
	Role    string
	Company string
}

type PageContent struct {
	Brand        string
	Tagline      string
	Headline     string
	Subheadline  string
	CTAText      string
	NavItems     []string
	Services     []Service
	Stats        []Stat
	Testimonials []Testimonial
	ServiceTypes []string
	ContactEmail string
	ContactBlurb string
}

func defaultContent() *PageContent {
	return &PageContent{
		Brand:       "VITRINE",
		Tagline:     "digital studio",
		Headline:    "Brands that move.",
		Subheadline: "Strategy, design and motion for companies that refuse to sit still.",
		CTAText:     "Start a project",
		NavItems:    []string{"Home", "Services", "Results", "Clients", "Contact"},
		Services: []Service{
			{Icon: "◆", Title: "Brand Identity", Description: "Naming, visual systems and guidelines that survive contact with the real world."},
			{Icon: "▲", Title: "Web Experiences", Description: "Fast, accessible sites with the kind of motion people remember."},
			{Icon: "●", Title: "Growth Campaigns", Description: "Paid and organic campaigns measured against revenue, not impressions."},
			{Icon: "■", Title: "Product Design", Description: "Interface and interaction design from first sketch to shipped release."},
		},
		Stats: []Stat{
			{Target: 240, Suffix: "+", Label: "projects shipped"},
			{Target: 98, Suffix: "%", Label: "client retention"},
			{Target: 12, Suffix: "", Label: "years in business"},
			{Target: 1800000, Suffix: "", Label: "users reached"},
		},
		Testimonials: []Testimonial{
			{
				Quote:   "They rebuilt our brand in eight weeks and our signup rate doubled the month we relaunched. I stopped shopping for agencies after that.",
				Author:  "Marina Duarte",
				Role:    "CMO",
				Company: "Loopwell",
			},
			{
				Quote:   "The rare studio that argues with you when you're wrong and then proves it with numbers. Worth every invoice.",
				Author:  "Sam Okafor",
				Role:    "Founder",
				Company: "Ferrite Labs",
			},
			{
				Quote:   "Our product demo finally looks like the product we thought we were building. The motion work is subtle and it sells.",
				Author:  "Ingrid Weiss",
				Role:    "Head of Product",
				Company: "Kantareel",
			},
			{
				Quote:   "Three campaigns, three record quarters. They treat our budget like it's their own money.",
				Author:  "Paulo Ferraz",
				Role:    "Commercial Director",
				Company: "Vetra Foods",
			},
			{
				Quote:   "Handed them a logo and a deadline, got back a brand. Still not sure how they pulled it off in time.",
				Author:  "Alice Ngata",
				Role:    "CEO",
				Company: "Brightline Legal",
			},
		},
		ServiceTypes: []string{"Brand Identity", "Web Experience", "Growth Campaign", "Product Design", "Something else"},
		ContactEmail: "hello@vitrine.studio",
		ContactBlurb: "Tell us where your brand is stuck. We reply within one business day.",
	}
}
