package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"sync"

	"github.com/gosimple/slug"
	"github.com/loot-scout/loot-scout-go/src/garland"
	httpclient "github.com/loot-scout/loot-scout-go/src/http"
	"github.com/loot-scout/loot-scout-go/src/loot"
	"github.com/loot-scout/loot-scout-go/src/store"
	"github.com/loot-scout/loot-scout-go/src/types"
	"github.com/loot-scout/loot-scout-go/src/validation"
	"github.com/loot-scout/loot-scout-go/src/wiki"
)

// LookupConfig holds configuration for the lookup command
type LookupConfig struct {
	HTTPClient  httpclient.HTTPClient
	Items       []string
	ByID        bool
	OutputFiles []string
	Save        bool
	Refresh     bool
	MaxWorkers  int
	StorePath   string
}

// ExportConfig holds configuration for the export command
type ExportConfig struct {
	Dir       string
	StorePath string
}

// CommandHandler handles CLI commands
type CommandHandler struct {
	merger *loot.Merger
}

// NewCommandHandler creates a new command handler
func NewCommandHandler() *CommandHandler {
	return &CommandHandler{
		merger: loot.NewMerger(),
	}
}

// Lookup scrapes the wiki for every requested item, supplements thin results
// from the loot store, and writes the aggregated results as JSON.
func (h *CommandHandler) Lookup(ctx context.Context, config LookupConfig) error {
	slog.Info("starting lookup command", "items", len(config.Items), "workers", config.MaxWorkers)

	lootStore := store.New(storePath(config.StorePath))
	wikiClient := wiki.NewClient(config.HTTPClient)
	garlandClient := garland.NewClient(config.HTTPClient)

	results := h.lookupAll(ctx, config, lootStore, wikiClient, garlandClient)

	if config.Save {
		for _, result := range results {
			lootStore.Put(*result)
		}
		if err := lootStore.Save(); err != nil {
			return fmt.Errorf("failed to save loot store: %w", err)
		}
		slog.Info("saved loot store", "entries", lootStore.Len())
	}

	for _, result := range results {
		h.merger.SortResult(result)
	}

	return h.writeResults(results, config.OutputFiles)
}

// lookupAll fans the item list out over a small worker pool and fans the
// results back in. One failing item costs that item only.
func (h *CommandHandler) lookupAll(
	ctx context.Context,
	config LookupConfig,
	lootStore *store.Store,
	wikiClient *wiki.Client,
	garlandClient *garland.Client,
) []*types.LootResult {
	itemCh := make(chan string, len(config.Items))
	for _, item := range config.Items {
		itemCh <- item
	}
	close(itemCh)

	resultCh := make(chan *types.LootResult, len(config.Items))

	var wg sync.WaitGroup
	for i := 0; i < config.MaxWorkers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for item := range itemCh {
				if ctx.Err() != nil {
					return
				}
				result, err := h.lookupOne(ctx, config, lootStore, wikiClient, garlandClient, item)
				if err != nil {
					slog.Error("lookup failed", "item", item, "error", err)
					continue
				}
				resultCh <- result
			}
		}()
	}

	wg.Wait()
	close(resultCh)

	var results []*types.LootResult
	for result := range resultCh {
		results = append(results, result)
	}
	return results
}

// lookupOne resolves one item name (through garland when looking up by id),
// scrapes its wiki page and tops the result up from the store when the
// scrape came back thin.
func (h *CommandHandler) lookupOne(
	ctx context.Context,
	config LookupConfig,
	lootStore *store.Store,
	wikiClient *wiki.Client,
	garlandClient *garland.Client,
	item string,
) (*types.LootResult, error) {
	subjectName := item

	if config.ByID {
		itemID64, err := strconv.ParseUint(item, 10, 32)
		if err != nil {
			return nil, fmt.Errorf("invalid item id %q: %w", item, err)
		}
		itemID := uint32(itemID64)

		name, ok := lootStore.NormalizedName(itemID)
		if !ok {
			name, err = garlandClient.GetItemName(ctx, itemID)
			if err != nil {
				return nil, err
			}
			if name == "" {
				return nil, fmt.Errorf("garland does not know item id %d", itemID)
			}
			lootStore.PutNormalizedName(itemID, name)
		}
		subjectName = name
	}

	result, err := wikiClient.LookupLoot(ctx, subjectName)
	if err != nil {
		return nil, err
	}

	if !config.Refresh && h.merger.NeedsSupplement(result) {
		if stored, ok := lootStore.Get(result.SubjectName); ok {
			slog.Debug("supplementing thin result from store", "subject", result.SubjectName)
			result = h.merger.MergeResults(result, &stored)
		}
	}

	return result, nil
}

// Export validates the loot store and writes one JSON file per stored item.
func (h *CommandHandler) Export(ctx context.Context, config ExportConfig) error {
	path := storePath(config.StorePath)
	slog.Info("starting export command", "store", path, "dir", config.Dir)

	if _, err := os.Stat(path); err == nil {
		if err := validation.ValidateStoreFile(path); err != nil {
			return fmt.Errorf("loot store failed validation: %w", err)
		}
	}

	lootStore := store.New(path)
	if lootStore.Len() == 0 {
		slog.Warn("loot store is empty, nothing to export")
		return nil
	}

	if err := os.MkdirAll(config.Dir, 0755); err != nil {
		return fmt.Errorf("failed to create export directory: %w", err)
	}

	for _, subject := range lootStore.SubjectNames() {
		if ctx.Err() != nil {
			return ctx.Err()
		}

		result, _ := lootStore.Get(subject)
		h.merger.SortResult(&result)

		jsonData, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal result for %q: %w", subject, err)
		}

		outPath := filepath.Join(config.Dir, slug.Make(subject)+".json")
		if err := os.WriteFile(outPath, jsonData, 0644); err != nil {
			return fmt.Errorf("failed to write %s: %w", outPath, err)
		}
		slog.Info("exported", "file", outPath, "drops", len(result.DropLocations), "purchases", len(result.PurchaseLocations))
	}

	return nil
}

// writeResults writes the results to the given output files, or stdout.
func (h *CommandHandler) writeResults(results []*types.LootResult, outputFiles []string) error {
	jsonData, err := json.MarshalIndent(results, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal results: %w", err)
	}

	if len(outputFiles) == 0 {
		fmt.Println(string(jsonData))
		return nil
	}

	for _, outputFile := range outputFiles {
		if err := os.WriteFile(outputFile, jsonData, 0644); err != nil {
			return fmt.Errorf("failed to write results to %s: %w", outputFile, err)
		}
		slog.Info("wrote results", "file", outputFile, "items", len(results))
	}

	return nil
}

// storePath applies the default store location when none was given.
func storePath(configured string) string {
	if configured != "" {
		return configured
	}
	cwd, err := os.Getwd()
	if err != nil {
		return store.DefaultFilename
	}
	return filepath.Join(cwd, store.DefaultFilename)
}
