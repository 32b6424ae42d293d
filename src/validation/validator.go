package validation

import (
	"encoding/json"
	"fmt"
	"os"
)

// ValidateStoreFile validates a persisted loot-store JSON file
func ValidateStoreFile(filePath string) error {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return fmt.Errorf("failed to read file: %w", err)
	}

	return ValidateStoreJSON(data)
}

// ValidateStoreJSON validates loot-store JSON data
func ValidateStoreJSON(data []byte) error {
	var storeData map[string]any
	if err := json.Unmarshal(data, &storeData); err != nil {
		return fmt.Errorf("failed to parse JSON: %w", err)
	}

	return SimpleValidateStore(storeData)
}

// ValidateResultJSON validates a single loot result in JSON form
func ValidateResultJSON(data []byte) error {
	var resultData map[string]any
	if err := json.Unmarshal(data, &resultData); err != nil {
		return fmt.Errorf("failed to parse JSON: %w", err)
	}

	return SimpleValidateResult(resultData)
}
