// Package store loads and saves the credit card configuration.
package store

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"fjacquet/smart-benefit/internal/benefiterror"
	"fjacquet/smart-benefit/internal/logging"
	"fjacquet/smart-benefit/internal/models"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// DefaultCardsFile is the file name searched for when no card file is configured.
const DefaultCardsFile = "cards.yaml"

const cardsFileHeader = `# Credit card benefit configuration
# Each card lists its benefit rules in priority order.
# Format:
#   cards:
#     - id: "the-more"
#       name: "신한카드 The More"
#       rules:
#         - category: ALL
#           type: COIN_SAVE
#           minAmount: 5000

`

// CardStore manages loading and saving of card configuration.
type CardStore struct {
	// CardsFile is the configured card file. Empty means search for DefaultCardsFile
	// and fall back to the built-in cards.
	CardsFile string

	logger   logging.Logger
	validate *validator.Validate
}

// NewCardStore creates a store for the given card file.
func NewCardStore(cardsFile string, logger logging.Logger) *CardStore {
	if logger == nil {
		logger = logging.NewLogrusAdapter("info", "text")
	}
	return &CardStore{
		CardsFile: cardsFile,
		logger:    logger,
		validate:  validator.New(),
	}
}

// FindConfigFile looks for filename in the standard locations: as given,
// ./config/, ./database/ and ~/.config/smart-benefit/.
func (s *CardStore) FindConfigFile(filename string) (string, error) {
	if filepath.IsAbs(filename) {
		if _, err := os.Stat(filename); err == nil {
			return filename, nil
		}
		return "", os.ErrNotExist
	}

	locations := []string{
		filename,
		filepath.Join("config", filename),
		filepath.Join("database", filename),
	}
	if homeDir, err := os.UserHomeDir(); err == nil {
		locations = append(locations, filepath.Join(homeDir, ".config", "smart-benefit", filename))
	}

	for _, location := range locations {
		if _, err := os.Stat(location); err == nil {
			return location, nil
		}
	}

	return "", os.ErrNotExist
}

// LoadCards returns the configured cards.
// Without a configured file and none found in the standard locations, it
// returns models.DefaultCards. A configured file that does not exist is an error.
func (s *CardStore) LoadCards() ([]models.CreditCard, error) {
	filename := s.CardsFile
	if filename == "" {
		filename = DefaultCardsFile
	}

	filePath, err := s.FindConfigFile(filename)
	if err != nil {
		if s.CardsFile == "" && errors.Is(err, os.ErrNotExist) {
			s.logger.Debug("No card file found, using built-in cards")
			return models.DefaultCards(), nil
		}
		return nil, fmt.Errorf("error resolving card file %s: %w", filename, err)
	}

	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("error reading card file: %w", err)
	}

	cards, err := parseCards(data)
	if err != nil {
		return nil, &benefiterror.CardConfigError{FilePath: filePath, Reason: "cannot parse YAML", Err: err}
	}

	if err := s.ValidateCards(filePath, cards); err != nil {
		return nil, err
	}

	s.logger.Debug("Loaded cards",
		logging.Field{Key: logging.FieldFile, Value: filePath},
		logging.Field{Key: logging.FieldCount, Value: len(cards)})
	return cards, nil
}

// parseCards accepts either a "cards:" document or a bare list of cards.
func parseCards(data []byte) ([]models.CreditCard, error) {
	var cfg models.CardsConfig
	structErr := yaml.Unmarshal(data, &cfg)
	if structErr == nil && len(cfg.Cards) > 0 {
		return cfg.Cards, nil
	}

	var cards []models.CreditCard
	if err := yaml.Unmarshal(data, &cards); err == nil {
		return cards, nil
	}

	if structErr != nil {
		return nil, structErr
	}
	return cfg.Cards, nil
}

// ValidateCards checks every card against its validation tags and rejects
// empty card lists and duplicate ids. source names the origin in errors.
func (s *CardStore) ValidateCards(source string, cards []models.CreditCard) error {
	if len(cards) == 0 {
		return &benefiterror.CardConfigError{FilePath: source, Reason: "no cards defined"}
	}

	seen := make(map[string]struct{}, len(cards))
	for _, card := range cards {
		if err := s.validate.Struct(card); err != nil {
			return &benefiterror.CardConfigError{FilePath: source, CardID: card.ID, Reason: "validation failed", Err: err}
		}
		if _, dup := seen[card.ID]; dup {
			return &benefiterror.CardConfigError{FilePath: source, CardID: card.ID, Reason: "duplicate card id"}
		}
		seen[card.ID] = struct{}{}
	}
	return nil
}

// SaveCards validates cards and writes them to the card file. Without a
// configured file it writes to an existing DefaultCardsFile, or creates one
// in the current directory.
func (s *CardStore) SaveCards(cards []models.CreditCard) (string, error) {
	filePath, err := s.targetFile()
	if err != nil {
		return "", err
	}

	if err := s.ValidateCards(filePath, cards); err != nil {
		return "", err
	}

	var buf bytes.Buffer
	buf.WriteString(cardsFileHeader)
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(models.CardsConfig{Cards: cards}); err != nil {
		return "", fmt.Errorf("could not marshal cards to YAML: %w", err)
	}
	if err := enc.Close(); err != nil {
		return "", fmt.Errorf("could not marshal cards to YAML: %w", err)
	}

	if dir := filepath.Dir(filePath); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return "", fmt.Errorf("could not create card file directory: %w", err)
		}
	}

	if err := os.WriteFile(filePath, buf.Bytes(), 0644); err != nil {
		return "", fmt.Errorf("could not write card file: %w", err)
	}

	s.logger.Info("Saved cards",
		logging.Field{Key: logging.FieldFile, Value: filePath},
		logging.Field{Key: logging.FieldCount, Value: len(cards)})
	return filePath, nil
}

func (s *CardStore) targetFile() (string, error) {
	if s.CardsFile != "" {
		return s.CardsFile, nil
	}
	filePath, err := s.FindConfigFile(DefaultCardsFile)
	if err == nil {
		return filePath, nil
	}
	if errors.Is(err, os.ErrNotExist) {
		return DefaultCardsFile, nil
	}
	return "", fmt.Errorf("error resolving card file: %w", err)
}

// AppendRules adds rules to the card with the given id and saves the result.
// It returns the updated card.
func (s *CardStore) AppendRules(cardID string, rules []models.BenefitRule) (models.CreditCard, error) {
	if len(rules) == 0 {
		return models.CreditCard{}, fmt.Errorf("no rules to append to card %s", cardID)
	}

	cards, err := s.LoadCards()
	if err != nil {
		return models.CreditCard{}, err
	}

	for i := range cards {
		if cards[i].ID != cardID {
			continue
		}
		cards[i].Rules = append(cards[i].Rules, rules...)
		if _, err := s.SaveCards(cards); err != nil {
			return models.CreditCard{}, err
		}
		return cards[i], nil
	}

	return models.CreditCard{}, fmt.Errorf("card not found: %s", cardID)
}
