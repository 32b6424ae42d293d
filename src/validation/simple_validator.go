package validation

import (
	"fmt"
	"regexp"
)

var coordinateJSONRegex = regexp.MustCompile(`^\(\d+(\.\d+)?,\d+(\.\d+)?\)$`)

// SimpleValidateStore validates a persisted loot-store blob using simple
// custom logic over the decoded JSON.
func SimpleValidateStore(data map[string]any) error {
	version, ok := data["version"].(string)
	if !ok {
		return fmt.Errorf("validation failed: version is required and must be a string")
	}
	if version == "" {
		return fmt.Errorf("validation failed: version must be a non-empty string")
	}

	entriesRaw, ok := data["entries"]
	if !ok {
		return fmt.Errorf("validation failed: entries is required")
	}
	if entriesRaw == nil {
		// null entries mean an empty store, which is fine
		return nil
	}

	entries, ok := entriesRaw.(map[string]any)
	if !ok {
		return fmt.Errorf("validation failed: entries must be an object")
	}

	for subject, resultRaw := range entries {
		result, ok := resultRaw.(map[string]any)
		if !ok {
			return fmt.Errorf("validation failed: entries[%q] must be an object", subject)
		}
		if err := SimpleValidateResult(result); err != nil {
			return fmt.Errorf("entries[%q]: %w", subject, err)
		}
	}

	return nil
}

// SimpleValidateResult validates one loot result in its JSON shape.
func SimpleValidateResult(result map[string]any) error {
	subject, ok := result["subject-name"].(string)
	if !ok || subject == "" {
		return fmt.Errorf("validation failed: subject-name is required and must be a non-empty string")
	}

	drops, err := requireList(result, "drop-locations")
	if err != nil {
		return err
	}
	for i, dropRaw := range drops {
		drop, ok := dropRaw.(map[string]any)
		if !ok {
			return fmt.Errorf("validation failed: drop-locations[%d] must be an object", i)
		}
		if err := validateDrop(drop, i); err != nil {
			return err
		}
	}

	purchases, err := requireList(result, "purchase-locations")
	if err != nil {
		return err
	}
	for i, purchaseRaw := range purchases {
		purchase, ok := purchaseRaw.(map[string]any)
		if !ok {
			return fmt.Errorf("validation failed: purchase-locations[%d] must be an object", i)
		}
		if err := validatePurchase(purchase, i); err != nil {
			return err
		}
	}

	return nil
}

func validateDrop(drop map[string]any, index int) error {
	prefix := fmt.Sprintf("drop-locations[%d]", index)

	source, ok := drop["source-name"].(string)
	if !ok || source == "" {
		return fmt.Errorf("validation failed: %s.source-name is required and must be a non-empty string", prefix)
	}

	// Remaining fields are free text and may be empty, but must be strings
	for _, field := range []string{"location-label", "level-label", "coordinate-label"} {
		if raw, present := drop[field]; present {
			if _, ok := raw.(string); !ok {
				return fmt.Errorf("validation failed: %s.%s must be a string", prefix, field)
			}
		}
	}

	if coord, _ := drop["coordinate-label"].(string); coord != "" && !coordinateJSONRegex.MatchString(coord) {
		return fmt.Errorf("validation failed: %s.coordinate-label must be empty or formatted as (x,y)", prefix)
	}

	return nil
}

func validatePurchase(purchase map[string]any, index int) error {
	prefix := fmt.Sprintf("purchase-locations[%d]", index)

	vendor, ok := purchase["vendor-name"].(string)
	if !ok || vendor == "" {
		return fmt.Errorf("validation failed: %s.vendor-name is required and must be a non-empty string", prefix)
	}

	for _, field := range []string{"location-label", "coordinate-label", "price", "currency-name"} {
		if raw, present := purchase[field]; present {
			if _, ok := raw.(string); !ok {
				return fmt.Errorf("validation failed: %s.%s must be a string", prefix, field)
			}
		}
	}

	if coord, _ := purchase["coordinate-label"].(string); coord != "" && !coordinateJSONRegex.MatchString(coord) {
		return fmt.Errorf("validation failed: %s.coordinate-label must be empty or formatted as (x,y)", prefix)
	}

	return nil
}

func requireList(data map[string]any, key string) ([]any, error) {
	raw, ok := data[key]
	if !ok {
		return nil, fmt.Errorf("validation failed: %s is required", key)
	}
	if raw == nil {
		// never null by contract: the parser allocates both slices
		return nil, fmt.Errorf("validation failed: %s must not be null", key)
	}
	list, ok := raw.([]any)
	if !ok {
		return nil, fmt.Errorf("validation failed: %s must be an array", key)
	}
	return list, nil
}
