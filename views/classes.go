package views

import "github.com/a-h/templ"

// bannerImage switches the hero text to its on-image variant. The site ships
// no banner image, so the variant classes are never applied.
const bannerImage = false

// HeroBannerClass is the class list of the hero <header>.
func HeroBannerClass() string {
	return templ.Classes("hero", "heroBanner").String()
}

// HeroTitleClass is the class list of the hero <h1>.
func HeroTitleClass() string {
	return templ.Classes("hero__title", templ.KV("titleOnBannerImage", bannerImage)).String()
}

// HeroTaglineClass is the class list of the hero tagline.
func HeroTaglineClass() string {
	return templ.Classes("hero__subtitle", templ.KV("taglineOnBannerImage", bannerImage)).String()
}

func menuLinkClass(active bool) string {
	return templ.Classes("menu__link", templ.KV("menu__link--active", active)).String()
}
