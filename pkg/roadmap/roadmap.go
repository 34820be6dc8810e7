// Package roadmap derives an implementation plan from a technology stack.
package roadmap

import (
	"fmt"

	"github.com/helmcode/vibe-analyzer/pkg/model"
)

type Milestone struct {
	ID           string   `json:"id" yaml:"id"`
	Phase        int      `json:"phase" yaml:"phase"`
	Title        string   `json:"title" yaml:"title"`
	Description  string   `json:"description" yaml:"description"`
	MinDays      int      `json:"minDays" yaml:"minDays"`
	MaxDays      int      `json:"maxDays" yaml:"maxDays"`
	Tasks        []string `json:"tasks" yaml:"tasks"`
	Dependencies []string `json:"dependencies" yaml:"dependencies"`
	Deliverables []string `json:"deliverables" yaml:"deliverables"`
	Risks        []string `json:"risks" yaml:"risks"`
	Technology   string   `json:"technology,omitempty" yaml:"technology,omitempty"`
}

// Duration renders the estimate, e.g. "2-3 giorni".
func (m Milestone) Duration() string {
	if m.MinDays == m.MaxDays {
		return fmt.Sprintf("%d giorni", m.MaxDays)
	}
	return fmt.Sprintf("%d-%d giorni", m.MinDays, m.MaxDays)
}

// TotalDays sums the upper bound of every milestone.
func TotalDays(ms []Milestone) int {
	total := 0
	for _, m := range ms {
		total += m.MaxDays
	}
	return total
}

// Generate builds the milestones for the given stack. Phases tied to a category are
// only emitted when that category has a real (non placeholder) suggestion, and each
// phase depends on the closest earlier phase that exists.
func Generate(technologies []model.TechnologySuggestion) []Milestone {
	stack := model.AnalysisResult{Technologies: technologies}
	get := func(c model.Category) (model.TechnologySuggestion, bool) {
		t, ok := stack.Technology(c)
		if !ok || t.IsPlaceholder() {
			return model.TechnologySuggestion{}, false
		}
		return t, true
	}

	var ms []Milestone
	last := "setup"

	hosting, hasHosting := get(model.CategoryHosting)
	setupTask := "Scegliere la piattaforma di hosting"
	if hasHosting {
		setupTask = fmt.Sprintf("Configurare %s per il deployment", hosting.Primary.Name)
	}
	ms = append(ms, Milestone{
		ID:          "setup",
		Phase:       0,
		Title:       "Setup & Pianificazione",
		Description: "Configurazione dell'ambiente di sviluppo e definizione dell'architettura iniziale",
		MinDays:     1,
		MaxDays:     2,
		Tasks: []string{
			"Inizializzare il repository Git",
			"Configurare l'ambiente di sviluppo",
			"Definire la struttura delle cartelle",
			"Configurare linting e formattazione",
			setupTask,
		},
		Dependencies: []string{},
		Deliverables: []string{"Repository configurato", "Ambiente locale funzionante", "Documentazione iniziale"},
		Risks:        []string{},
		Technology:   nameOf(hosting, hasHosting),
	})

	if db, ok := get(model.CategoryDatabase); ok {
		ms = append(ms, Milestone{
			ID:          "database",
			Phase:       1,
			Title:       "Database & Schema",
			Description: fmt.Sprintf("Configurazione di %s e progettazione dello schema", db.Primary.Name),
			MinDays:     2,
			MaxDays:     3,
			Tasks: []string{
				fmt.Sprintf("Configurare %s", db.Primary.Name),
				"Progettare lo schema ER del database",
				"Creare le tabelle principali",
				"Definire le relazioni tra entità",
				"Implementare le migrazioni",
			},
			Dependencies: []string{last},
			Deliverables: []string{"Schema database completo", "Migrazioni funzionanti", "Seed data per sviluppo"},
			Risks:        risks(db, "Schema non normalizzato potrebbe causare problemi futuri"),
			Technology:   db.Primary.Name,
		})
		last = "database"
	}

	if auth, ok := get(model.CategoryAuthentication); ok {
		ms = append(ms, Milestone{
			ID:          "auth",
			Phase:       2,
			Title:       "Autenticazione & Sicurezza",
			Description: fmt.Sprintf("Implementazione di %s per la gestione utenti", auth.Primary.Name),
			MinDays:     2,
			MaxDays:     4,
			Tasks: []string{
				fmt.Sprintf("Configurare %s", auth.Primary.Name),
				"Implementare login/registrazione",
				"Gestire i token JWT",
				"Implementare Row Level Security (RLS)",
				"Configurare i ruoli utente",
			},
			Dependencies: []string{last},
			Deliverables: []string{"Sistema di login funzionante", "Protezione delle route", "Gestione sessioni"},
			Risks:        risks(auth, "RLS policies non testate possono esporre dati sensibili"),
			Technology:   auth.Primary.Name,
		})
		last = "auth"
	}

	if backend, ok := get(model.CategoryBackend); ok {
		ms = append(ms, Milestone{
			ID:          "backend",
			Phase:       3,
			Title:       "Backend & API",
			Description: fmt.Sprintf("Sviluppo delle API con %s", backend.Primary.Name),
			MinDays:     3,
			MaxDays:     5,
			Tasks: []string{
				fmt.Sprintf("Configurare %s", backend.Primary.Name),
				"Definire gli endpoint API",
				"Implementare la validazione input",
				"Creare i controller/handler",
				"Implementare la gestione errori",
			},
			Dependencies: []string{last},
			Deliverables: []string{"API documentate", "Test coverage > 80%", "Error handling robusto"},
			Risks:        risks(backend, "API non versionata può rompere i client"),
			Technology:   backend.Primary.Name,
		})
		last = "backend"
	}

	if frontend, ok := get(model.CategoryFrontend); ok {
		styling, hasStyling := get(model.CategoryStyling)
		styleName := "CSS"
		styleTask := "Configurare il sistema CSS"
		if hasStyling {
			styleName = styling.Primary.Name
			styleTask = fmt.Sprintf("Integrare %s", styleName)
		}
		ms = append(ms, Milestone{
			ID:          "frontend-core",
			Phase:       4,
			Title:       "Frontend & Design System",
			Description: fmt.Sprintf("Sviluppo dell'interfaccia con %s e %s", frontend.Primary.Name, styleName),
			MinDays:     4,
			MaxDays:     7,
			Tasks: []string{
				fmt.Sprintf("Configurare %s", frontend.Primary.Name),
				styleTask,
				"Creare i componenti base (Button, Input, Card...)",
				"Implementare il layout principale",
				"Configurare il routing",
			},
			Dependencies: []string{last},
			Deliverables: []string{"Design system documentato", "Componenti riutilizzabili", "Layout responsive"},
			Risks:        risks(frontend, "Componenti non accessibili escludono utenti"),
			Technology:   fmt.Sprintf("%s + %s", frontend.Primary.Name, styleName),
		})
		last = "frontend-core"
	}

	ms = append(ms, Milestone{
		ID:          "features",
		Phase:       5,
		Title:       "Feature Principali",
		Description: "Implementazione delle funzionalità core dell'applicazione",
		MinDays:     5,
		MaxDays:     10,
		Tasks: []string{
			"Implementare le feature MVP",
			"Integrare frontend e backend",
			"Gestire gli edge case",
			"Implementare feedback utente (toast, loading...)",
			"Ottimizzare le performance",
		},
		Dependencies: []string{last},
		Deliverables: []string{"MVP funzionante", "User flow completi", "Feedback visivo per ogni azione"},
		Risks:        []string{"Scope creep può ritardare il rilascio", "Bug non testati in produzione"},
	})

	ms = append(ms, Milestone{
		ID:           "testing",
		Phase:        6,
		Title:        "Testing & QA",
		Description:  "Test approfonditi e controllo qualità",
		MinDays:      2,
		MaxDays:      4,
		Tasks:        []string{"Scrivere test end-to-end", "Test di accessibilità", "Test di performance", "Security audit base", "Bug fixing"},
		Dependencies: []string{"features"},
		Deliverables: []string{"Report test coverage", "Lighthouse score > 90", "0 vulnerabilità critiche"},
		Risks:        []string{"Test insufficienti portano bug in produzione"},
	})

	target := "produzione"
	if hasHosting {
		target = hosting.Primary.Name
	}
	ms = append(ms, Milestone{
		ID:           "deploy",
		Phase:        7,
		Title:        "Deploy & Lancio",
		Description:  fmt.Sprintf("Deployment su %s e go-live", target),
		MinDays:      1,
		MaxDays:      2,
		Tasks:        []string{"Configurare il CI/CD", "Setup monitoring e alerting", "Configurare il dominio e SSL", "Deploy in staging", "Deploy in produzione"},
		Dependencies: []string{"testing"},
		Deliverables: []string{"App in produzione", "Monitoring attivo", "Runbook per emergenze"},
		Risks:        []string{"Downtime durante il deploy", "Configurazioni diverse tra staging e prod"},
		Technology:   nameOf(hosting, hasHosting),
	})

	return ms
}

func risks(t model.TechnologySuggestion, base string) []string {
	out := []string{base}
	if len(t.Primary.Cons) > 0 {
		out = append(out, t.Primary.Cons[0])
	}
	return out
}

func nameOf(t model.TechnologySuggestion, ok bool) string {
	if !ok {
		return ""
	}
	return t.Primary.Name
}
