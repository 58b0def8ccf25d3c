package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/MarkoPoloResearchLab/vendomat/pkg/vending"
)

// ItemConfig describes one stocked item in the startup configuration.
type ItemConfig struct {
	Name       string `mapstructure:"name"`
	PriceCents int64  `mapstructure:"price_cents"`
	Quantity   int    `mapstructure:"quantity"`
}

// Config aggregates the machine's startup state. Coin keys are strings so
// the config file survives YAML round-tripping; CoinFloat converts them.
type Config struct {
	Items []ItemConfig   `mapstructure:"items"`
	Coins map[string]int `mapstructure:"coins"`
}

// Validate fills defaults for an empty configuration: the machine boots with
// the stock and coin float the original deployment used.
func (cfg *Config) Validate() error {
	if len(cfg.Items) == 0 {
		cfg.Items = []ItemConfig{
			{Name: "Coke", PriceCents: 150, Quantity: 5},
			{Name: "Chips", PriceCents: 100, Quantity: 3},
			{Name: "Candy", PriceCents: 75, Quantity: 8},
			{Name: "Water", PriceCents: 125, Quantity: 2},
		}
	}
	if len(cfg.Coins) == 0 {
		cfg.Coins = map[string]int{
			"200": 1, "100": 2, "50": 6, "20": 10,
			"10": 10, "5": 10, "2": 10, "1": 2,
		}
	}
	for _, item := range cfg.Items {
		if strings.TrimSpace(item.Name) == "" {
			return fmt.Errorf("item name is required")
		}
		if item.PriceCents <= 0 {
			return fmt.Errorf("item %s: price must be positive", item.Name)
		}
		if item.Quantity < 0 {
			return fmt.Errorf("item %s: quantity must not be negative", item.Name)
		}
	}
	return nil
}

// CoinFloat converts the configured coins into a raw denomination map.
func (cfg *Config) CoinFloat() (map[int]int, error) {
	coins := make(map[int]int, len(cfg.Coins))
	for face, count := range cfg.Coins {
		denomination, err := strconv.Atoi(strings.TrimSpace(face))
		if err != nil {
			return nil, fmt.Errorf("coin denomination %q is not a number", face)
		}
		coins[denomination] = count
	}
	return coins, nil
}

// BuildMachine constructs a vending machine from the configuration.
func BuildMachine(cfg Config, options ...vending.MachineOption) (*vending.VendingMachine, error) {
	items := make([]*vending.Item, 0, len(cfg.Items))
	for _, itemConfig := range cfg.Items {
		item, err := vending.NewItem(itemConfig.Name, itemConfig.PriceCents, itemConfig.Quantity)
		if err != nil {
			return nil, fmt.Errorf("item %s: %w", itemConfig.Name, err)
		}
		items = append(items, item)
	}
	inventory, err := vending.NewInventory(items...)
	if err != nil {
		return nil, err
	}
	rawCoins, err := cfg.CoinFloat()
	if err != nil {
		return nil, err
	}
	balance, err := vending.NewCoins(rawCoins)
	if err != nil {
		return nil, fmt.Errorf("coin float: %w", err)
	}
	return vending.NewVendingMachine(inventory, balance, options...)
}
