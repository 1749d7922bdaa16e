// Package seed holds the static featured-products list shown on the
// storefront landing page. It is a standalone demo dataset: its entries do
// not share ids or fields with catalog.Product.
package seed

import "slices"

// Entry is one featured product card.
type Entry struct {
	Title    string  `json:"title"`
	Subtitle string  `json:"subtitle"`
	Price    float64 `json:"price"`
	Category string  `json:"category"`
	Image    string  `json:"image"`
	ImageAlt string  `json:"imageAlt"`
	Brand    string  `json:"brand"`
}

// Featured returns a copy of the featured list.
func Featured() []Entry { return slices.Clone(featured) }

var featured = []Entry{
	{
		Title:    "Ghost Hydration Sticks",
		Subtitle: "Polvo con electrolitos - 24 Servicios",
		Price:    520,
		Category: "Hidratacion",
		Image:    "https://res.cloudinary.com/dvwzbhwmx/image/upload/v1749082722/Ghost_HydrationSticks_LemonCrush_24Serv_ywtxl4.webp",
		ImageAlt: "Ghost Hydration Sticks Lemon Crush",
		Brand:    "Ghost",
	},
	{
		Title:    "Insane Psychotic Gold",
		Subtitle: "Pre entreno - 35 Servicios",
		Price:    440,
		Category: "Pre entreno",
		Image:    "https://res.cloudinary.com/dvwzbhwmx/image/upload/v1749082721/Insane_PsychoticGold_FruitPunch_35Serv_d6abih.webp",
		ImageAlt: "Insane Psychotic Gold Fruit Punch",
		Brand:    "Insane Labz",
	},
	{
		Title:    "Venom Inferno Brazo de 50 Limon",
		Subtitle: "Pre entreno - 40 Servicios",
		Price:    510,
		Category: "Pre entreno",
		Image:    "https://res.cloudinary.com/dvwzbhwmx/image/upload/v1749082721/DrgPhr_BrazoDe50Limon_lcqjrk.webp",
		ImageAlt: "Venom Inferno Brazo de 50 Limon",
		Brand:    "Dragon Pharma",
	},
	{
		Title:    "Creatina Dragon Pharma",
		Subtitle: "Creatina - 1 kg",
		Price:    700,
		Category: "Creatina",
		Image:    "https://res.cloudinary.com/dvwzbhwmx/image/upload/v1749082720/DrgPhr_Creatine1kg_rcvwyg.webp",
		ImageAlt: "Dragon Pharma Creatina 1 kg",
		Brand:    "Dragon Pharma",
	},
	{
		Title:    "Proteína Iso Phorm",
		Subtitle: "Proteina - 5 lbs",
		Price:    1500,
		Category: "Proteina",
		Image:    "https://res.cloudinary.com/dvwzbhwmx/image/upload/v1749082719/DrgPhr_IsoPhorm_HotChoc_5lbs_sblnox.webp",
		ImageAlt: "Dragon Pharma Iso Phorm Hot Chocolate 5 lbs",
		Brand:    "Dragon Pharma",
	},
	{
		Title:    "Dym ISO 100 Whey Protein",
		Subtitle: "Proteina - 5 lbs",
		Price:    1600,
		Category: "Proteina",
		Image:    "https://res.cloudinary.com/dvwzbhwmx/image/upload/v1749082719/Dym_ISO100_FudgeBrownie_tqbiri.webp",
		ImageAlt: "Dymatize ISO 100 Fudge Brownie 5 lbs",
		Brand:    "Dymatize",
	},
	{
		Title:    "Evogen Amino K.E.M.",
		Subtitle: "Aminoacidos - 30 Servicios",
		Price:    680,
		Category: "Aminoacidos",
		Image:    "https://res.cloudinary.com/dvwzbhwmx/image/upload/v1749082718/Evo_AminoKEM_VictoryPunch_bvittx.webp",
		ImageAlt: "Evogen Amino K.E.M. Victory Punch",
		Brand:    "Evogen",
	},
	{
		Title:    "Evogen Brain Builder",
		Subtitle: "Suplemento nootropico - 90 Capsulas",
		Price:    650,
		Category: "Nootropicos",
		Image:    "https://res.cloudinary.com/dvwzbhwmx/image/upload/v1749082718/Evogen_BrainBuilder_90caps_gf5bvm.webp",
		ImageAlt: "Evogen Brain Builder 90 Capsulas",
		Brand:    "Evogen",
	},
	{
		Title:    "Ghost Legend All Out",
		Subtitle: "Pre entreno - 20 Servicios",
		Price:    750,
		Category: "Pre entreno",
		Image:    "https://res.cloudinary.com/dvwzbhwmx/image/upload/v1749082718/Ghost_LegendAllOut_CherryLimeade_urxzpt.webp",
		ImageAlt: "Ghost Legend All Out Cherry Limeade",
		Brand:    "Ghost",
	},
	{
		Title:    "Ghost Whey Protein",
		Subtitle: "Proteina whey - 5 lbs",
		Price:    1370,
		Category: "Proteina",
		Image:    "https://res.cloudinary.com/dvwzbhwmx/image/upload/v1749082718/Ghost_WheyProtein_ChocChipCookie_5lbs_p0bvrx.webp",
		ImageAlt: "Ghost Whey Protein Chocolate Chip Cookie 5 lbs",
		Brand:    "Ghost",
	},
	{
		Title:    "Insane Creatina",
		Subtitle: "Creatina - 300 gr",
		Price:    350,
		Category: "Creatina",
		Image:    "https://res.cloudinary.com/dvwzbhwmx/image/upload/v1749082717/Insane_Creatine_300gr_tlwz58.webp",
		ImageAlt: "Insane Creatina 300 gr",
		Brand:    "Insane Labz",
	},
	{
		Title:    "Evogen Creatina",
		Subtitle: "Creatina - 300 gr",
		Price:    430,
		Category: "Creatina",
		Image:    "https://res.cloudinary.com/dvwzbhwmx/image/upload/v1749082717/Evogen_Creatine_300gr_u2pajm.webp",
		ImageAlt: "Evogen Creatina 300 gr",
		Brand:    "Evogen",
	},
	{
		Title:    "Farm Fed Whey Protein",
		Subtitle: "Proteina - 28 Servicios",
		Price:    750,
		Category: "Proteina",
		Image:    "https://res.cloudinary.com/dvwzbhwmx/image/upload/v1749081112/A_S_FarmFed_ChocolateMilkhake_dquvmm.webp",
		ImageAlt: "Farm Fed Whey Protein Chocolate Milkshake",
		Brand:    "Axe and Sledge",
	},
}
