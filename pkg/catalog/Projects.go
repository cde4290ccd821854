package catalog

import (
	"github.com/mugisham37/moses-mugisha/pkg/images"
	"github.com/mugisham37/moses-mugisha/pkg/models"
)

/*
projectData is the authoritative, hand-authored case study list. Order
matters: listings and slug enumeration follow this order. Every image
goes through pkg/images so srcset and sizes stay consistent.
*/
var projectData = []models.Project{
	{
		ID:             "corevia-financial-platform",
		Title:          "Corevia Financial Platform",
		Description:    "A digital banking platform that turns dense account data into clear, daily-useful screens.",
		Category:       models.CategoryProducts,
		ThumbnailImage: "https://framerusercontent.com/images/4S73FQPBMrApLF5ZD6xygtG2SE.png",
		HeroImage:      images.Large("https://framerusercontent.com/images/Jm2XbVhQp8KsYtR6wD3nL5cAfu.png", "Corevia dashboard overview on desktop"),
		SecondaryImage: images.Secondary("https://framerusercontent.com/images/Qp9ZsTfW2mRxKjB4vH7yN8dEgo.png", "Corevia transaction list and spending insights"),
		ProcessImage:   images.Secondary("https://framerusercontent.com/images/Tr5WnKqD8fXzLmC2sJ6bV4hPyu.png", "Wireframes and component explorations for Corevia"),
		ClosingImage:   images.Large("https://framerusercontent.com/images/Xw8BnMpF3kQzRtS7cV2jL6gHde.png", "Corevia mobile app screens on dark background"),
		About: models.ProjectAbout{
			Client:       "Corevia",
			Contribution: "Product design, design system, front-end build",
			Year:         "2024",
		},
		FullDescription: "Corevia approached me to rethink their retail banking experience from the ground up. " +
			"The engagement covered research, a full design system, and a production front-end: " +
			"account overviews, budgeting tools, and a payments flow that holds up under real-world complexity.",
		ProblemTitle:  "Banking screens that buried the numbers people actually need",
		SolutionTitle: "One glanceable surface for balances, budgets, and payments",
		ProblemDescription: []string{
			"Corevia's legacy app presented every account, card, and product with equal weight. Users reported opening the app for one number and leaving after four taps without finding it.",
			"The existing interface had grown screen by screen over six years. Inconsistent components and navigation patterns made every new feature more expensive than the last.",
		},
		SolutionDescription: []string{
			"We rebuilt the information architecture around the three questions users ask daily: what do I have, what is leaving soon, and what changed. The home screen answers all three without a single tap.",
			"A tokenized design system replaced the organically grown component zoo. New product surfaces now compose from the same parts, which cut design-to-build handoff time roughly in half.",
			"Payments were flattened into a single progressive flow with inline validation, which lifted completion rates measurably within the first month.",
		},
		ExternalLink: "https://corevias.netlify.app/",
	},
	{
		ID:             "stayli-vacation-rental-platform",
		Title:          "Stayli Vacation Rental Platform",
		Description:    "A booking platform for boutique vacation rentals, designed to feel as warm as the stays it sells.",
		Category:       models.CategoryProducts,
		ThumbnailImage: "https://framerusercontent.com/images/Kt6YvRqM9jWzPfA3bN8xS2dLhu.png",
		HeroImage:      images.Large("https://framerusercontent.com/images/Zc4HnBvK7pQyTmX2rW9jF5sGae.png", "Stayli search results with map view"),
		SecondaryImage: images.Secondary("https://framerusercontent.com/images/Vf3JmPwT8qZxKcB5nR7yD4hSgu.png", "Stayli listing detail page with photo gallery"),
		ProcessImage:   images.Secondary("https://framerusercontent.com/images/Bn7KpXvF2mWzQjT4sC8rL9dYeu.png", "Booking flow diagrams and early sketches"),
		ClosingImage:   images.Large("https://framerusercontent.com/images/Hs2TmNvQ6kXzPwR8cJ3bF7gWdu.png", "Stayli checkout confirmation on mobile"),
		About: models.ProjectAbout{
			Client:       "Stayli",
			Contribution: "UX strategy, interface design, booking flow",
			Year:         "2024",
		},
		FullDescription: "Stayli curates boutique rentals that the big aggregators flatten into identical cards. " +
			"The brief was to design a booking experience with the texture of a travel magazine and the " +
			"conversion discipline of an airline checkout, from search through confirmation.",
		ProblemTitle:  "Unique homes rendered as interchangeable inventory",
		SolutionTitle: "Editorial listing pages on top of a ruthless booking funnel",
		ProblemDescription: []string{
			"Stayli's hosts invest heavily in their properties, but the old template showed every home as the same grid of thumbnails and amenity icons. Nothing justified the above-market nightly rates.",
			"Meanwhile the booking funnel leaked: five screens, three of which re-asked information the guest had already given.",
		},
		SolutionDescription: []string{
			"Listing pages were rebuilt as editorial spreads: full-bleed photography, host narratives, and neighborhood notes, with pricing and availability pinned in a persistent sidebar.",
			"The funnel was cut to two steps. Dates and guests carry through from search, payment and guest details share one screen, and the confirmation doubles as the trip hub.",
		},
		ExternalLink: "https://stayli.netlify.app/",
	},
	{
		ID:             "pulsefit-coaching-app",
		Title:          "PulseFit Coaching App",
		Description:    "A mobile training experience that makes a personal coach feel present between sessions.",
		Category:       models.CategoryUIUX,
		ThumbnailImage: "https://framerusercontent.com/images/Rd8WqTvN4mXzKpF6jB2cS9hLau.png",
		HeroImage:      images.Large("https://framerusercontent.com/images/Gm5ZnQvW7kRxTcJ3pB8fD2sYhu.png", "PulseFit workout screen mid-session"),
		SecondaryImage: images.Secondary("https://framerusercontent.com/images/Lw4JpKvB9qTzXmN2rF7cH6dSgu.png", "PulseFit weekly plan and recovery views"),
		ProcessImage:   images.Secondary("https://framerusercontent.com/images/Py6TmRvK3jWzQcX8nD4bS7hFeu.png", "User journey maps and usability test notes"),
		ClosingImage:   images.Large("https://framerusercontent.com/images/Nc9XpBvT2mQzKwR4sJ7fL3gHdu.png", "PulseFit onboarding screens in sequence"),
		About: models.ProjectAbout{
			Client:       "PulseFit",
			Contribution: "UX research, interaction design, prototyping",
			Year:         "2023",
		},
		FullDescription: "PulseFit pairs remote athletes with human coaches. The product's promise lives or dies " +
			"in the gap between weekly check-ins, so the engagement focused on the daily loop: plan, " +
			"train, log, and hear back. I ran the research, designed the interaction model, and built " +
			"the prototypes used for validation.",
		ProblemTitle:  "Coaching that went silent six days a week",
		SolutionTitle: "A daily loop that keeps the coach in the room",
		ProblemDescription: []string{
			"Interviews showed athletes loved their coaches but experienced the app as a PDF viewer: a static weekly plan, a notes field, and silence until the next call.",
			"Logging a workout took longer than some of the workouts. Most athletes gave up on in-app tracking within three weeks and reverted to spreadsheets.",
		},
		SolutionDescription: []string{
			"The session screen was redesigned around one-thumb logging: sets advance automatically, weights carry over, and deviations from the plan take a single tap to record.",
			"Every completed session generates a structured summary the coach can react to with one tap or a short voice note, which turned the weekly silence into a daily exchange.",
			"Onboarding now captures training history through a conversational flow, so the first generated plan lands close enough that athletes trust the system from day one.",
		},
	},
	{
		ID:             "atlas-travel-companion",
		Title:          "Atlas Travel Companion",
		Description:    "A trip-planning interface that folds flights, stays, and days into one living itinerary.",
		Category:       models.CategoryUIUX,
		ThumbnailImage: "https://framerusercontent.com/images/Wf2KnQvM8pTzXjB5rC9dS4hLgu.png",
		HeroImage:      images.Large("https://framerusercontent.com/images/Dm7ZpTvK4qWzRcN3jF8bH2sXeu.png", "Atlas itinerary timeline for a two-week trip"),
		SecondaryImage: images.Secondary("https://framerusercontent.com/images/Sv5JmXwB6kQzTpR2nD9cF7hGau.png", "Atlas day view with map and bookings"),
		ProcessImage:   images.Secondary("https://framerusercontent.com/images/Kq8TnRvF3mXzPwC6sB4jL9dYhu.png", "Information architecture diagrams for Atlas"),
		ClosingImage:   images.Large("https://framerusercontent.com/images/Fc4XpMvQ7kTzKwJ2rS8bN5gHdu.png", "Atlas shared trip view across devices"),
		About: models.ProjectAbout{
			Client:       "Atlas Labs",
			Contribution: "Interface design, design system, motion design",
			Year:         "2023",
		},
		FullDescription: "Atlas Labs wanted to replace the folder of confirmation emails every traveler carries with " +
			"a single itinerary that understands time and place. I designed the interface and the motion " +
			"language, and delivered the component library their engineers built against.",
		ProblemTitle:  "Trips scattered across inboxes, screenshots, and spreadsheets",
		SolutionTitle: "One timeline that knows where you are and what comes next",
		ProblemDescription: []string{
			"Research participants managed an average of four tools per trip. The cost surfaced at the worst moments: airport transfers, checkout times, and reservations in other time zones.",
			"Existing aggregators imported bookings but displayed them as an undifferentiated list, leaving the traveler to reconstruct each day mentally.",
		},
		SolutionDescription: []string{
			"The core of Atlas is a timeline that renders each day as a sequence of anchored blocks with the travel between them made explicit, so gaps and conflicts are visible at a glance.",
			"A contextual now card promotes whatever matters next: the gate, the confirmation code, the walking directions. During testing, it became the screen travelers kept open all day.",
		},
	},
	{
		ID:             "orbit-one-smartwatch",
		Title:          "Orbit One Smartwatch",
		Description:    "Product visualization for a launch campaign: hero renders, exploded views, and animation stills.",
		Category:       models.Category3D,
		ThumbnailImage: "https://framerusercontent.com/images/Bt6YnKvW9mQzXpF3jR8cD2sLhu.png",
		HeroImage:      images.Large("https://framerusercontent.com/images/Jw3ZmPvT5kXzRcB8nF6bS4hQeu.png", "Orbit One hero render on gradient backdrop"),
		SecondaryImage: images.Secondary("https://framerusercontent.com/images/Mq7TpXvK2jWzNcR4sD9bF8hGau.png", "Exploded view of the Orbit One internals"),
		ProcessImage:   images.Secondary("https://framerusercontent.com/images/Zn5JmBvQ8qTzKwX2rC7jL3dSgu.png", "Clay renders and material studies"),
		ClosingImage:   images.Large("https://framerusercontent.com/images/Vc9XpTvM4kQzPwS6bJ2fN7gHdu.png", "Orbit One macro shot of the crown and casing"),
		About: models.ProjectAbout{
			Client:       "Orbit Wearables",
			Contribution: "3D modeling, look development, rendering",
			Year:         "2024",
		},
		FullDescription: "Orbit Wearables needed launch imagery before a physical unit existed. Working from CAD and " +
			"material samples, I modeled the watch, developed the materials, and delivered the full " +
			"campaign set: hero renders, an exploded technical view, and stills from the launch film.",
		ProblemTitle:  "A launch date with no product to photograph",
		SolutionTitle: "Renders accurate enough to stand in for the camera",
		ProblemDescription: []string{
			"The campaign had to ship eight weeks ahead of the first production units, ruling out photography entirely for the announcement.",
			"Early agency renders read as obviously synthetic. The brushed titanium and the sapphire glass both lacked the imperfections that sell realism.",
		},
		SolutionDescription: []string{
			"I rebuilt the materials from physical samples, adding micro-scratches, anisotropic brushing, and edge wear driven by curvature, then matched the studio lighting rigs the brand's photographers actually use.",
			"The exploded view doubled as engineering communication: assembly order and component naming came straight from the CAD tree, so the same asset served marketing and documentation.",
		},
	},
	{
		ID:             "nova-audio-lineup",
		Title:          "Nova Audio Lineup",
		Description:    "A family of headphone renders unifying three products under one visual language.",
		Category:       models.Category3D,
		ThumbnailImage: "https://framerusercontent.com/images/Ht4WnQvB7pXzKjF2mR9cS6dLau.png",
		HeroImage:      images.Large("https://framerusercontent.com/images/Qm8ZpTvW3kRzXcN5jB2fD9sYeu.png", "Nova headphone lineup arranged in studio light"),
		SecondaryImage: images.Secondary("https://framerusercontent.com/images/Tw6JmKvF9qXzPcR3nS7bH4dGgu.png", "Nova earcup detail with fabric texture"),
		ProcessImage:   images.Secondary("https://framerusercontent.com/images/Xq2TnBvK5mWzQwC8rD4jF7hSeu.png", "Lighting tests and color variant grid"),
		ClosingImage:   images.Large("https://framerusercontent.com/images/Rc7XpMvT9kQzKwB4sJ6bL2gHdu.png", "Nova flagship floating render with cable detail"),
		About: models.ProjectAbout{
			Client:       "Nova Audio",
			Contribution: "3D rendering, art direction, retouching",
			Year:         "2023",
		},
		FullDescription: "Nova Audio's three headphone lines were shot by different studios over three years and it " +
			"showed. I rebuilt the whole lineup in 3D and art-directed a single visual system: one " +
			"lighting rig, one color pipeline, one set of angles, applied across every product and " +
			"colorway for web, retail, and packaging.",
		ProblemTitle:  "Three products that looked like three different brands",
		SolutionTitle: "A virtual studio the whole lineup is shot in",
		ProblemDescription: []string{
			"Inconsistent lighting and perspective across legacy photography made the product grid feel like a marketplace of third-party sellers rather than one catalog.",
			"Every new colorway required a reshoot, which meant the web store lagged the actual product line by months.",
		},
		SolutionDescription: []string{
			"The virtual studio fixes camera, lighting, and grade once. Any product dropped into it comes out belonging to the same family, and a new colorway is a material swap rather than a booking.",
			"Deliverables were generated at every crop and resolution the storefront needs, replacing the manual retouch-and-resize step that had been the bottleneck before each launch.",
		},
	},
}
