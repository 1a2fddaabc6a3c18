package main

import (
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/kmathur/glide/internal/config"
	"github.com/kmathur/glide/internal/dictionary"
	"github.com/kmathur/glide/internal/layout"
	"github.com/kmathur/glide/internal/server"
	"github.com/kmathur/glide/internal/store"
)

func main() {
	fmt.Println("Glide - Swipe Typing Engine")

	configPath := os.Getenv("GLIDE_CONFIG")
	if configPath == "" {
		configPath = config.DefaultConfigPath()
	}

	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	dataDir := config.DefaultDataDir()
	if cfg.DataDir != nil && *cfg.DataDir != "" {
		dataDir = *cfg.DataDir
	}
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		log.Fatalf("Failed to create data directory: %v", err)
	}

	dbPath := filepath.Join(dataDir, "glide.db")
	st, err := store.New(dbPath)
	if err != nil {
		log.Fatalf("Failed to initialize store: %v", err)
	}
	defer st.Close()

	// Discover layout manifests and seed the store copy that the API
	// and the decoders read from.
	layoutDir := config.DefaultLayoutDir()
	if cfg.LayoutDir != nil && *cfg.LayoutDir != "" {
		layoutDir = *cfg.LayoutDir
	}
	registry := layout.NewRegistry(layoutDir)
	if err := registry.Discover(); err != nil {
		log.Fatalf("Failed to discover layouts: %v", err)
	}
	if err := seedLayouts(st, registry); err != nil {
		log.Fatalf("Failed to seed layouts: %v", err)
	}
	log.Printf("Loaded %d layouts from %s", len(registry.List()), layoutDir)

	dict, err := loadDictionary(st, cfg)
	if err != nil {
		log.Fatalf("Failed to load dictionary: %v", err)
	}
	if dict != nil {
		log.Printf("Dictionary ready with %d words", dict.Len())
	} else {
		log.Println("No dictionary configured, suggestions fall back to the decoded candidate")
	}

	staticDir := ""
	if cfg.StaticDir != nil {
		staticDir = *cfg.StaticDir
	}

	srv := server.New(server.Config{
		StaticDir: staticDir,
		Store:     st,
		Dict:      dict,
		Decoder:   cfg.DecoderConfig(),
	})

	addr := cfg.ListenAddr()
	fmt.Printf("Starting server on %s\n", addr)
	if err := srv.ListenAndServe(addr); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}

// seedLayouts mirrors discovered layout manifests into the store so the
// API and decode endpoints serve the same geometry.
func seedLayouts(st *store.Store, registry *layout.Registry) error {
	for _, l := range registry.List() {
		keys := make([]store.KeyRect, 0, len(l.Keys))
		for keyID, rect := range l.Keys {
			keys = append(keys, store.KeyRect{
				KeyID:  keyID,
				Left:   rect.Left,
				Top:    rect.Top,
				Right:  rect.Right,
				Bottom: rect.Bottom,
			})
		}

		if _, err := st.Layouts().GetByID(l.ID); errors.Is(err, store.ErrNotFound) {
			if err := st.Layouts().Create(&store.Layout{ID: l.ID, Name: l.Name}); err != nil {
				return err
			}
		} else if err != nil {
			return err
		}

		if err := st.Layouts().ReplaceKeys(l.ID, keys); err != nil {
			return err
		}
	}

	return nil
}

// loadDictionary loads words from the configured word list file,
// mirroring them into the store, or falls back to previously stored
// words. Returns nil when no dictionary is available.
func loadDictionary(st *store.Store, cfg config.FileConfig) (*dictionary.Dictionary, error) {
	lang := cfg.LangOr()

	if cfg.Wordlist != nil && *cfg.Wordlist != "" {
		dict, err := dictionary.Load(*cfg.Wordlist)
		if err != nil {
			return nil, err
		}
		if err := st.Words().ReplaceAll(lang, dict.Words()); err != nil {
			return nil, err
		}
		return dict, nil
	}

	words, err := st.Words().ListByLang(lang)
	if err != nil {
		return nil, err
	}
	if len(words) == 0 {
		return nil, nil
	}
	return dictionary.New(words), nil
}
