package roster

import "github.com/sharkfolio/sharkgen/internal/model"

// DefaultRoster returns the built-in roster for a variant.
func DefaultRoster(v model.Variant) model.Roster {
	switch v {
	case model.VariantSimple:
		return simpleRoster()
	default:
		return enhancedRoster()
	}
}

var (
	anupamMittal = model.Investor{
		Slug:   "anupam-mittal",
		Name:   "Anupam Mittal",
		Role:   "Founder and CEO of Shaadi.com",
		Image:  "https://images.financialexpressdigital.com/2024/02/Anupam-Mittal.jpg",
		Column: "Anupam",
	}
	amanGupta = model.Investor{
		Slug:   "aman-gupta",
		Name:   "Aman Gupta",
		Role:   "Co-founder and CMO of boAt",
		Image:  "https://www.livemint.com/lm-img/img/2024/12/29/optimize/Aman_Gupta_1735448892089_1735448902978.jpg",
		Column: "Aman",
	}
	namitaThapar = model.Investor{
		Slug:   "namita-thapar",
		Name:   "Namita Thapar",
		Role:   "Executive Director of Emcure Pharmaceuticals",
		Image:  "https://img.etimg.com/thumb/width-1200,height-1200,imgsize-28506,resizemode-75,msid-118027212/magazines/panache/shark-tank-india-4-namita-thapar-rejects-gift-from-pitchers-chides-them-for-doing-too-much.jpg",
		Column: "Namita",
	}
	vineetaSingh = model.Investor{
		Slug:   "vineeta-singh",
		Name:   "Vineeta Singh",
		Role:   "Co-founder and CEO of SUGAR Cosmetics",
		Image:  "https://c.ndtvimg.com/2024-04/cuhn5gno_vineeta-singh_625x300_20_April_24.jpg",
		Column: "Vineeta",
	}
	peyushBansal = model.Investor{
		Slug:   "peyush-bansal",
		Name:   "Peyush Bansal",
		Role:   "Co-founder and CEO of Lenskart.com",
		Image:  "https://mxp-media.ilnmedia.com/media/content/2022/Jan/Headerthumb_Sony-Pictures-television_61f3ce2de3500.png",
		Column: "Peyush",
	}
	// Ghazal has no dedicated columns in the dataset.
	ghazalAlagh = model.Investor{
		Slug:  "ghazal-alagh",
		Name:  "Ghazal Alagh",
		Role:  "Co-founder of Mamaearth",
		Image: "https://images.ottplay.com/images/shark-tank-india-ghazal-alagh-1643892567.jpg",
	}
	amitJain = model.Investor{
		Slug:   "amit-jain",
		Name:   "Amit Jain",
		Role:   "CEO and Co-founder of CarDekho",
		Image:  "https://images.hindustantimes.com/img/2022/11/02/550x309/amit_jain_shark_tank_1667382519477_1667382519625_1667382519625.png",
		Column: "Amit",
	}
	ashneerGrover = model.Investor{
		Slug:     "ashneer-grover",
		Name:     "Ashneer Grover",
		Role:     "Co-founder and Former MD of BharatPe",
		Image:    "https://m.media-amazon.com/images/M/MV5BN2YyMjNhZDctNTRlOC00MTExLThmYTUtN2QyNjU5NDBkMDFmXkEyXkFqcGc@._V1_.jpg",
		GuestKey: "Ashneer",
	}
	riteshAgarwal = model.Investor{
		Slug:   "ritesh-agarwal",
		Name:   "Ritesh Agarwal",
		Role:   "Founder and CEO of OYO Rooms",
		Image:  "https://images.indianexpress.com/2024/02/Shark-Tank-Indias-Ritesh-Agarwal-on-his-journey-with-OYO-Rooms.jpg",
		Column: "Ritesh",
	}
	kunalBahl = model.Investor{
		Slug:     "kunal-bahl",
		Name:     "Kunal Bahl",
		Role:     "Co-founder and CEO of Snapdeal",
		Image:    "https://img.etimg.com/thumb/width-420,height-315,imgsize-62190,resizemode-75,msid-118867594/magazines/panache/shark-tank-india-4-kunal-bahl-gets-emotional-over-64-year-old-entrepreneurs-pitch-says-you-remind-me-of-my-mother/kunal-bahl-2.jpg",
		GuestKey: "Kunal",
	}
)

func simpleRoster() model.Roster {
	return model.Roster{Investors: []model.Investor{
		anupamMittal,
		amanGupta,
		namitaThapar,
		vineetaSingh,
		peyushBansal,
		ghazalAlagh,
		amitJain,
		ashneerGrover,
	}}
}

func enhancedRoster() model.Roster {
	r := simpleRoster()
	r.Investors = append(r.Investors, riteshAgarwal, kunalBahl)
	return r
}
