package main

import (
	"flag"
	"log"

	"github.com/gin-gonic/gin"

	"influencer-trust/ai"
	"influencer-trust/config"
	"influencer-trust/database"
	"influencer-trust/handlers"
	"influencer-trust/source"
	"influencer-trust/templates"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to the YAML config file")
	seedPath := flag.String("seed", "", "load a JSON fixture into the catalog and exit")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatal("Failed to load config:", err)
	}

	if *seedPath != "" {
		if err := seed(cfg.CatalogPath, *seedPath); err != nil {
			log.Fatal("Failed to seed catalog:", err)
		}
		return
	}

	src, err := newSource(cfg)
	if err != nil {
		log.Fatal("Failed to initialise source:", err)
	}

	tmpl, err := templates.Parse()
	if err != nil {
		log.Fatal("Failed to parse templates:", err)
	}

	gin.SetMode(cfg.Mode)
	r := gin.Default()

	h := handlers.New(src, tmpl, handlers.Options{
		SearchDelay: cfg.SearchDebounce,
		HandoffTTL:  cfg.HandoffTTL,
	})
	h.Register(r, cfg.CORSOrigins)

	log.Printf("Starting Influencer Trust server on %s (source: %s)", cfg.Addr(), cfg.Source)
	log.Printf("Leaderboard: http://localhost%s/", cfg.Addr())

	if err := r.Run(cfg.Addr()); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}

func newSource(cfg config.Config) (source.Source, error) {
	if cfg.Source == config.SourceCatalog {
		db, err := database.Open(cfg.CatalogPath)
		if err != nil {
			return nil, err
		}
		return source.NewCatalogSource(db), nil
	}

	gen, err := ai.NewGenerator(ai.FactoryConfig{
		Provider:    cfg.AIProvider,
		Model:       cfg.AIModel,
		BaseURL:     cfg.AIBaseURL,
		Timeout:     cfg.AITimeout,
		GeminiKey:   cfg.GeminiKey,
		DeepSeekKey: cfg.DeepSeekKey,
	})
	if err != nil {
		return nil, err
	}
	log.Printf("AI provider: %s", cfg.AIProvider)
	return source.NewAISource(gen), nil
}

func seed(catalogPath, fixturePath string) error {
	f, err := database.LoadFixture(fixturePath)
	if err != nil {
		return err
	}
	db, err := database.Open(catalogPath)
	if err != nil {
		return err
	}
	if err := database.Seed(db, f); err != nil {
		return err
	}
	log.Printf("Seeded %d influencers into %s", len(f.Influencers), catalogPath)
	return nil
}
