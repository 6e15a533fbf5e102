package main

// PlanCard drives one pricing card on the landing page.
type PlanCard struct {
	ID          string
	TitleKey    string
	FeatureKeys []string
	// Action: "product" links into the tools, "checkout" posts to billing,
	// "inquiry" anchors to the contact section.
	Action string
}

// FeatureCard is one entry of the landing feature grid.
type FeatureCard struct {
	TitleKey string
	DescKey  string
	Href     string
}

// LandingView is the landing page view model.
type LandingView struct {
	Lang           string
	Features       []FeatureCard
	BetaKeys       []string
	Plans          []PlanCard
	CheckoutNotice string
}

func buildLandingView(lang string, checkoutFailed bool) LandingView {
	view := LandingView{
		Lang: lang,
		Features: []FeatureCard{
			{TitleKey: "landing.feature1.title", DescKey: "landing.feature1.desc", Href: "/analyzer"},
			{TitleKey: "landing.feature2.title", DescKey: "landing.feature2.desc", Href: "/prompt-tracker"},
			{TitleKey: "landing.feature3.title", DescKey: "landing.feature3.desc", Href: "/keyword-rank"},
			{TitleKey: "landing.feature4.title", DescKey: "landing.feature4.desc", Href: "/optimizer"},
		},
		BetaKeys: []string{"landing.li1", "landing.li2", "landing.li3", "landing.li4"},
		Plans: []PlanCard{
			{
				ID:          "free",
				TitleKey:    "plans.free.title",
				FeatureKeys: []string{"plans.free.f1", "plans.free.f2"},
				Action:      "product",
			},
			{
				ID:          "pro",
				TitleKey:    "plans.pro.title",
				FeatureKeys: []string{"plans.pro.f1", "plans.pro.f2", "plans.pro.f3", "plans.pro.f4"},
				Action:      "checkout",
			},
			{
				ID:          "enterprise",
				TitleKey:    "plans.ent.title",
				FeatureKeys: []string{"plans.ent.f1", "plans.ent.f2", "plans.ent.f3"},
				Action:      "inquiry",
			},
		},
	}
	if checkoutFailed {
		view.CheckoutNotice = i18nBundle.T(lang, "plans.checkout_failed")
	}
	return view
}
