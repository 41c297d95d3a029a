package preset

import "logotint/model"

// builtins is the static catalog shipped with the binary, in menu order.
var builtins = []Preset{
	{Name: "default", Display: "Default", Colors: model.DefaultPalette()},
	{
		Name:    "corporate",
		Display: "Corporate",
		Colors: model.Palette{
			Primary:         "#2C3E50",
			Secondary:       "#3498DB",
			Accent:          "#1ABC9C",
			Neutral:         "#ECF0F1",
			Special:         "#3498DB",
			GradientStart:   "#34495E",
			GradientEnd:     "#2C3E50",
			BackgroundColor: "#f8f9fa",
		},
	},
	{
		Name:    "warm",
		Display: "Warm",
		Colors: model.Palette{
			Primary:         "#E74C3C",
			Secondary:       "#F39C12",
			Accent:          "#D35400",
			Neutral:         "#FDF2E9",
			Special:         "#F39C12",
			GradientStart:   "#EC7063",
			GradientEnd:     "#E74C3C",
			BackgroundColor: "#fff5f5",
		},
	},
	{
		Name:    "cool",
		Display: "Cool",
		Colors: model.Palette{
			Primary:         "#3498DB",
			Secondary:       "#9B59B6",
			Accent:          "#2980B9",
			Neutral:         "#EBF5FB",
			Special:         "#9B59B6",
			GradientStart:   "#5DADE2",
			GradientEnd:     "#3498DB",
			BackgroundColor: "#f0f8ff",
		},
	},
	{
		Name:    "nature",
		Display: "Nature",
		Colors: model.Palette{
			Primary:         "#27AE60",
			Secondary:       "#16A085",
			Accent:          "#229954",
			Neutral:         "#E8F8F5",
			Special:         "#16A085",
			GradientStart:   "#58D68D",
			GradientEnd:     "#27AE60",
			BackgroundColor: "#f0fff4",
		},
	},
	{
		Name:    "sunset",
		Display: "Sunset",
		Colors: model.Palette{
			Primary:         "#FF6B6B",
			Secondary:       "#FFE66D",
			Accent:          "#FF8E53",
			Neutral:         "#FFF3E0",
			Special:         "#FFE66D",
			GradientStart:   "#FF8A80",
			GradientEnd:     "#FF6B6B",
			BackgroundColor: "#fff8f0",
		},
	},
	{
		Name:    "monochrome",
		Display: "Monochrome",
		Colors: model.Palette{
			Primary:         "#2C3E50",
			Secondary:       "#7F8C8D",
			Accent:          "#34495E",
			Neutral:         "#F8F9FA",
			Special:         "#7F8C8D",
			GradientStart:   "#5D6D7E",
			GradientEnd:     "#2C3E50",
			BackgroundColor: "#ffffff",
		},
	},
	{
		Name:    "forestGradient",
		Display: "Forest Gradient",
		Colors: model.Palette{
			Primary:         "#11998e",
			Secondary:       "#38ef7d",
			Accent:          "#0d7377",
			Neutral:         "#f0fff4",
			Special:         "#38ef7d",
			GradientStart:   "#11998e",
			GradientEnd:     "#38ef7d",
			BackgroundColor: "#f0fdf4",
		},
	},
	{
		Name:    "purpleGradient",
		Display: "Purple Gradient",
		Colors: model.Palette{
			Primary:         "#8360c3",
			Secondary:       "#2ebf91",
			Accent:          "#6a4c93",
			Neutral:         "#faf5ff",
			Special:         "#2ebf91",
			GradientStart:   "#8360c3",
			GradientEnd:     "#2ebf91",
			BackgroundColor: "#f7f3ff",
		},
	},
	{
		Name:    "fireGradient",
		Display: "Fire Gradient",
		Colors: model.Palette{
			Primary:         "#ff416c",
			Secondary:       "#ff4b2b",
			Accent:          "#e73c7e",
			Neutral:         "#fff5f5",
			Special:         "#ff4b2b",
			GradientStart:   "#ff416c",
			GradientEnd:     "#ff4b2b",
			BackgroundColor: "#fff1f1",
		},
	},
	{
		Name:    "skyGradient",
		Display: "Sky Gradient",
		Colors: model.Palette{
			Primary:         "#74b9ff",
			Secondary:       "#0984e3",
			Accent:          "#6c5ce7",
			Neutral:         "#f8fbff",
			Special:         "#0984e3",
			GradientStart:   "#74b9ff",
			GradientEnd:     "#0984e3",
			BackgroundColor: "#f1f8ff",
		},
	},
	{
		Name:    "spring",
		Display: "Spring",
		Colors: model.Palette{
			Primary:         "#98fb98",
			Secondary:       "#ffb6c1",
			Accent:          "#90ee90",
			Neutral:         "#f0fff0",
			Special:         "#ffb6c1",
			GradientStart:   "#98fb98",
			GradientEnd:     "#ffb6c1",
			BackgroundColor: "#f5fffa",
		},
	},
	{
		Name:    "summer",
		Display: "Summer",
		Colors: model.Palette{
			Primary:         "#ffd700",
			Secondary:       "#ff6347",
			Accent:          "#ffa500",
			Neutral:         "#fffacd",
			Special:         "#ff6347",
			GradientStart:   "#ffd700",
			GradientEnd:     "#ff6347",
			BackgroundColor: "#fffff0",
		},
	},
	{
		Name:    "midnight",
		Display: "Midnight",
		Colors: model.Palette{
			Primary:         "#191970",
			Secondary:       "#4169e1",
			Accent:          "#6495ed",
			Neutral:         "#f8f8ff",
			Special:         "#4169e1",
			GradientStart:   "#191970",
			GradientEnd:     "#4169e1",
			BackgroundColor: "#f0f0f0",
		},
	},
	{
		Name:    "royal",
		Display: "Royal",
		Colors: model.Palette{
			Primary:         "#4b0082",
			Secondary:       "#daa520",
			Accent:          "#9370db",
			Neutral:         "#f5f5f5",
			Special:         "#daa520",
			GradientStart:   "#4b0082",
			GradientEnd:     "#9370db",
			BackgroundColor: "#faf0e6",
		},
	},
	{
		Name:    "tropical",
		Display: "Tropical",
		Colors: model.Palette{
			Primary:         "#ff4500",
			Secondary:       "#32cd32",
			Accent:          "#ff1493",
			Neutral:         "#f0ffff",
			Special:         "#32cd32",
			GradientStart:   "#ff4500",
			GradientEnd:     "#ff1493",
			BackgroundColor: "#f0fff0",
		},
	},
	{
		Name:    "arctic",
		Display: "Arctic",
		Colors: model.Palette{
			Primary:         "#b0c4de",
			Secondary:       "#87cefa",
			Accent:          "#4682b4",
			Neutral:         "#f0f8ff",
			Special:         "#87cefa",
			GradientStart:   "#b0c4de",
			GradientEnd:     "#87cefa",
			BackgroundColor: "#f8f8ff",
		},
	},
	{
		Name:    "volcano",
		Display: "Volcano",
		Colors: model.Palette{
			Primary:         "#dc143c",
			Secondary:       "#ff4500",
			Accent:          "#b22222",
			Neutral:         "#ffe4e1",
			Special:         "#ff4500",
			GradientStart:   "#dc143c",
			GradientEnd:     "#ff4500",
			BackgroundColor: "#fff0f5",
		},
	},
	{
		Name:    "emerald",
		Display: "Emerald",
		Colors: model.Palette{
			Primary:         "#50c878",
			Secondary:       "#00ff7f",
			Accent:          "#3cb371",
			Neutral:         "#f0fff0",
			Special:         "#00ff7f",
			GradientStart:   "#50c878",
			GradientEnd:     "#00ff7f",
			BackgroundColor: "#f5fffa",
		},
	},
	{
		Name:    "ruby",
		Display: "Ruby",
		Colors: model.Palette{
			Primary:         "#e0115f",
			Secondary:       "#ff69b4",
			Accent:          "#dc143c",
			Neutral:         "#fff0f5",
			Special:         "#ff69b4",
			GradientStart:   "#e0115f",
			GradientEnd:     "#ff69b4",
			BackgroundColor: "#ffe4e1",
		},
	},
	{
		Name:    "deepSea",
		Display: "Deep Sea",
		Colors: model.Palette{
			Primary:         "#006994",
			Secondary:       "#4682b4",
			Accent:          "#5f9ea0",
			Neutral:         "#f0f8ff",
			Special:         "#4682b4",
			GradientStart:   "#006994",
			GradientEnd:     "#4682b4",
			BackgroundColor: "#f0f8ff",
		},
	},
	{
		Name:    "goldRush",
		Display: "Gold Rush",
		Colors: model.Palette{
			Primary:         "#ffd700",
			Secondary:       "#ffb347",
			Accent:          "#daa520",
			Neutral:         "#fffacd",
			Special:         "#ffb347",
			GradientStart:   "#ffd700",
			GradientEnd:     "#ffb347",
			BackgroundColor: "#fffff0",
		},
	},
	{
		Name:    "mysticForest",
		Display: "Mystic Forest",
		Colors: model.Palette{
			Primary:         "#228b22",
			Secondary:       "#32cd32",
			Accent:          "#006400",
			Neutral:         "#f0fff0",
			Special:         "#32cd32",
			GradientStart:   "#228b22",
			GradientEnd:     "#32cd32",
			BackgroundColor: "#f5fffa",
		},
	},
	{
		Name:    "cosmicDust",
		Display: "Cosmic Dust",
		Colors: model.Palette{
			Primary:         "#663399",
			Secondary:       "#9966cc",
			Accent:          "#8b008b",
			Neutral:         "#f8f8ff",
			Special:         "#9966cc",
			GradientStart:   "#663399",
			GradientEnd:     "#9966cc",
			BackgroundColor: "#f5f5f5",
		},
	},
	{
		Name:    "neonCyan",
		Display: "Neon Cyan",
		Colors: model.Palette{
			Primary:         "#00ffff",
			Secondary:       "#40e0d0",
			Accent:          "#00ced1",
			Neutral:         "#f0ffff",
			Special:         "#40e0d0",
			GradientStart:   "#00ffff",
			GradientEnd:     "#40e0d0",
			BackgroundColor: "#f0fffe",
		},
	},
	{
		Name:    "electricBlue",
		Display: "Electric Blue",
		Colors: model.Palette{
			Primary:         "#7df9ff",
			Secondary:       "#00bfff",
			Accent:          "#1e90ff",
			Neutral:         "#f0f8ff",
			Special:         "#00bfff",
			GradientStart:   "#7df9ff",
			GradientEnd:     "#00bfff",
			BackgroundColor: "#f8fcff",
		},
	},
}
