package model

// BuiltinProjects returns the static portfolio seed records.
//
// These render immediately on gallery start; remote metadata upgrades
// them in place as it arrives.
func BuiltinProjects() []Project {
	return []Project{
		{
			ID:    "neon-soda",
			Title: "Neon Soda — 3D Spin",
			Tags:  []string{"Beverage", "Video", "3D"},
			Blurb: "Snackable loops designed to sparkle in-feed with light-reactive cans.",
			Description: "We built a 3D spin system that catches ambient light and dramatizes reflections, " +
				"making the can feel alive. Variants tested different label foils and rim lights. The result: " +
				"a compact loop that consistently grabs attention without feeling intrusive.",
			VideoBase: "ad_01",
			Hue:       8,
		},
		{
			ID:    "orbit-shoes",
			Title: "Orbit Shoes — Kinetic Carousel",
			Tags:  []string{"Footwear", "Carousel"},
			Blurb: "Rapid variant carousel tuned for CTR and swipe time.",
			Description: "We orchestrated a kinetic carousel that rotates product angles while keeping copy " +
				"extremely scannable. Dozens of variants tested motion pacing and color blocking to maximize " +
				"interaction without fatiguing users.",
			VideoBase: "ad_02",
			Hue:       -12,
		},
		{
			ID:    "novaskincare",
			Title: "NovaSkincare — Macro Glow",
			Tags:  []string{"Beauty", "Macro"},
			Blurb: "Crisp macro highlights and texture-led storytelling.",
			Description: "We leaned into macro shots that celebrate texture and finish, building credibility " +
				"through detail. Subtle rack-focus moments guide the eye to key benefit copy while keeping the " +
				"pace soothing and premium.",
			VideoBase: "ad_03",
			Hue:       18,
		},
		{
			ID:    "pulsefit",
			Title: "PulseFit — Motion Morphs",
			Tags:  []string{"Fitness", "Video"},
			Blurb: "Morph sequences align beats with product benefits.",
			Description: "Beat-matched morphs transition between product states, making benefits intuitive at " +
				"a glance. We tested rhythm density and accent pulses to balance energy with readability.",
			VideoBase: "ad_04",
			Hue:       0,
		},
		{
			ID:    "quantawatch",
			Title: "QuantaWatch — Minimal Luxe",
			Tags:  []string{"Wearables", "Static"},
			Blurb: "Ultra-clean layouts that read in 0.3 seconds.",
			Description: "A spare, high-contrast system that lets the hardware shine. Micro-animations add life " +
				"without compromising the brand’s restrained tone, producing strong comprehension at speed.",
			VideoBase: "ad_05",
			Hue:       -24,
		},
		{
			ID:    "bytebrew",
			Title: "ByteBrew — Steam & Script",
			Tags:  []string{"Coffee", "UGC"},
			Blurb: "UGC-style hooks synthesized for authenticity.",
			Description: "We prototyped human-sounding hooks and paired them with tactile coffee moments—steam, " +
				"pours, crema. The blend reads native in-feed, lifting saves and completion rates.",
			VideoBase: "ad_06",
			Hue:       28,
		},
		{
			ID:    "astrabags",
			Title: "AstraBags — Color Pop",
			Tags:  []string{"Fashion", "Static"},
			Blurb: "High-chroma accents engineered for scroll-stopping contrast.",
			Description: "Bold chroma blocks snap attention, while clean product crops keep the brand elevated. " +
				"We tuned the palette for different feeds to maintain contrast and color fidelity.",
			VideoBase: "ad_07",
			Hue:       -36,
		},
		{
			ID:    "lumenhome",
			Title: "LumenHome — Before/After",
			Tags:  []string{"Home", "Carousel"},
			Blurb: "Transformation sequences optimized for clarity.",
			Description: "A simple, satisfying reveal compares states without gimmicks. We systematized angles " +
				"and copy hierarchy so every slide reads instantly—even at small sizes.",
			VideoBase: "ad_08",
			Hue:       42,
		},
	}
}
