// Package architecture groups a technology stack into presentation layers.
package architecture

import "github.com/helmcode/vibe-analyzer/pkg/model"

type Layer struct {
	Name         string                       `json:"name" yaml:"name"`
	Icon         string                       `json:"icon" yaml:"icon"`
	Description  string                       `json:"description" yaml:"description"`
	Technologies []model.TechnologySuggestion `json:"technologies" yaml:"technologies"`
}

type layerDef struct {
	name        string
	icon        string
	description string
	categories  []model.Category
}

var layerDefs = []layerDef{
	{
		name:        "Presentation Layer",
		icon:        "🎨",
		description: "Ciò che l'utente vede e tocca",
		categories:  []model.Category{model.CategoryFrontend, model.CategoryStyling},
	},
	{
		name:        "Application Layer",
		icon:        "⚙️",
		description: "La logica e l'elaborazione dei dati",
		categories:  []model.Category{model.CategoryBackend, model.CategoryAuthentication},
	},
	{
		name:        "Data Layer",
		icon:        "💾",
		description: "Dove i dati vengono conservati",
		categories:  []model.Category{model.CategoryDatabase},
	},
	{
		name:        "Infrastructure",
		icon:        "🌐",
		description: "Servizi di supporto e deployment",
		categories:  []model.Category{model.CategoryHosting},
	},
}

// Layers returns the four architecture layers in top-down order. Within a layer,
// suggestions keep the order they have in technologies. Layers may be empty.
func Layers(technologies []model.TechnologySuggestion) []Layer {
	layerOf := make(map[model.Category]int)
	for i, def := range layerDefs {
		for _, c := range def.categories {
			layerOf[c] = i
		}
	}

	out := make([]Layer, len(layerDefs))
	for i, def := range layerDefs {
		out[i] = Layer{
			Name:         def.name,
			Icon:         def.icon,
			Description:  def.description,
			Technologies: []model.TechnologySuggestion{},
		}
	}
	for _, t := range technologies {
		i, ok := layerOf[t.Category]
		if !ok {
			continue
		}
		out[i].Technologies = append(out[i].Technologies, t)
	}
	return out
}
