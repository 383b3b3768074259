// gachactl is the presentation layer around the probability engine: it loads
// a banner YAML, builds the engine, and formats query, sampling, and cost
// results for humans. The engine itself never touches files or stdout.
package main

import (
	"fmt"
	"math"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/xtding233/gacha-rates/internal/config"
	"github.com/xtding233/gacha-rates/internal/gacha"
	"github.com/xtding233/gacha-rates/internal/pricing"
)

var (
	configPath string // banner YAML file
	logLevel   string // log verbosity level
	seed       uint64 // RNG seed; 0 keeps the crypto-backed default

	rollCount int
	itemName  string
	target    float64
	rolls     int
	simDraws  int
	simTrials int
)

var rootCmd = &cobra.Command{
	Use:   "gachactl",
	Short: "Probability queries and simulation for tiered gacha banners",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level, err := logrus.ParseLevel(logLevel)
		if err != nil {
			logrus.Fatalf("Invalid log level: %s", logLevel)
		}
		logrus.SetLevel(level)
	},
}

// loadBanner reads the banner file; engine construction is separate so the
// cost command can reach the token/catalog sections too.
func loadBanner() config.RawBanner {
	if configPath == "" {
		logrus.Fatal("--config is required")
	}
	raw, err := config.LoadFile(configPath)
	if err != nil {
		logrus.Fatalf("load %s: %v", configPath, err)
	}
	return raw
}

func buildEngine(raw config.RawBanner) *gacha.Engine {
	var rng gacha.RandomSource
	if seed != 0 {
		rng = gacha.NewSeededRNG(seed)
		logrus.Debugf("using seeded RNG, seed=%d", seed)
	}
	eng, err := gacha.NewEngine(raw.EngineConfig(), rng)
	if err != nil {
		logrus.Fatalf("bad banner config: %v", err)
	}
	return eng
}

var ratesCmd = &cobra.Command{
	Use:   "rates",
	Short: "Print the effective drop rate of every configured item",
	Run: func(cmd *cobra.Command, args []string) {
		eng := buildEngine(loadBanner())
		all, err := eng.AllItemDropRates()
		if err != nil {
			logrus.Fatalf("rates: %v", err)
		}
		for _, r := range all {
			fmt.Printf("%-24s %-12s %.6f%%\n", r.Name, r.Tier, r.DropRate*100)
		}
		if up := eng.RateUpItems(); len(up) > 0 {
			fmt.Printf("rate-up: %v\n", up)
		}
	},
}

var rollCmd = &cobra.Command{
	Use:   "roll",
	Short: "Draw from the banner",
	Run: func(cmd *cobra.Command, args []string) {
		eng := buildEngine(loadBanner())
		for i, name := range eng.Roll(rollCount) {
			fmt.Printf("%3d  %s\n", i+1, name)
		}
	},
}

var reachCmd = &cobra.Command{
	Use:   "reach",
	Short: "Cumulative probability over N rolls, or rolls needed for a target",
	Run: func(cmd *cobra.Command, args []string) {
		if itemName == "" {
			logrus.Fatal("--item is required")
		}
		eng := buildEngine(loadBanner())
		p, err := eng.EffectiveDropRate(itemName)
		if err != nil {
			logrus.Fatalf("reach: %v", err)
		}
		fmt.Printf("%s: per-draw rate %.6f%%\n", itemName, p*100)
		if rolls > 0 {
			c, err := eng.CumulativeProbability(itemName, rolls)
			if err != nil {
				logrus.Fatalf("reach: %v", err)
			}
			fmt.Printf("P(at least one in %d rolls) = %.4f%%\n", rolls, c*100)
		}
		if target > 0 {
			n, err := eng.RollsForTargetProbability(itemName, target)
			if err != nil {
				logrus.Fatalf("reach: %v", err)
			}
			if math.IsInf(n, 1) {
				fmt.Printf("target %.2f%% is unreachable (zero drop rate)\n", target*100)
			} else {
				fmt.Printf("rolls for %.2f%% chance: %.0f\n", target*100, n)
			}
		}
	},
}

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Monte Carlo: observed frequencies, or draws-until-item trials",
	Run: func(cmd *cobra.Command, args []string) {
		eng := buildEngine(loadBanner())
		if itemName != "" {
			stats, err := eng.TrialsUntilItem(itemName, simTrials)
			if err != nil {
				logrus.Fatalf("simulate: %v", err)
			}
			fmt.Printf("draws until %s over %d trials:\n", itemName, simTrials)
			fmt.Printf("  mean=%.2f stddev=%.2f p50=%.0f p90=%.0f p99=%.0f\n",
				stats.Mean, stats.StdDev, stats.P50, stats.P90, stats.P99)
			return
		}
		logrus.Infof("simulating %d draws", simDraws)
		rep := eng.SimulateFrequencies(simDraws)
		all, err := eng.AllItemDropRates()
		if err != nil {
			logrus.Fatalf("simulate: %v", err)
		}
		for _, r := range all {
			fmt.Printf("%-24s expected %.4f%%  observed %.4f%%\n",
				r.Name, r.DropRate*100, rep.Frequency(r.Name)*100)
		}
	},
}

var costCmd = &cobra.Command{
	Use:   "cost",
	Short: "Cheapest pack plan for a target probability on an item",
	Run: func(cmd *cobra.Command, args []string) {
		if itemName == "" {
			logrus.Fatal("--item is required")
		}
		raw := loadBanner()
		tok, ok := raw.DrawToken()
		if !ok {
			logrus.Fatal("banner has no token section")
		}
		cat, ok := raw.PackCatalog()
		if !ok {
			logrus.Fatal("banner has no catalog section")
		}
		eng := buildEngine(raw)
		n, err := eng.RollsForTargetProbability(itemName, target)
		if err != nil {
			logrus.Fatalf("cost: %v", err)
		}
		if math.IsInf(n, 1) {
			logrus.Fatalf("%s can never drop; no finite plan", itemName)
		}
		draws := int(n)
		// every pack still first-time eligible; the CLI has no purchase history
		first := pricing.FirstTimeState{}
		for _, p := range cat.Packs {
			first[p.ID] = p.FirstTimeX2
		}
		plan := pricing.MinCostForDraws(cat, tok, draws, first)
		fmt.Printf("%d draws (%d %s) for a %.1f%% chance at %s\n",
			draws, tok.TokensForDraws(draws), tok.Name, target*100, itemName)
		for _, pu := range plan.Purchases {
			fmt.Printf("  %dx %-20s %8.2f\n", pu.Qty, pu.Name, float64(pu.Subtotal)/100)
		}
		fmt.Printf("  subtotal %.2f  tax %.2f  total %.2f %s (%d tokens)\n",
			float64(plan.SubCents)/100, float64(plan.TaxCents)/100,
			float64(plan.TotalCents)/100, plan.Currency, plan.TotalTokens)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "banner YAML file")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "log verbosity")
	rootCmd.PersistentFlags().Uint64Var(&seed, "seed", 0, "RNG seed (0 = nondeterministic)")

	rollCmd.Flags().IntVar(&rollCount, "count", 1, "number of draws")

	reachCmd.Flags().StringVar(&itemName, "item", "", "item name")
	reachCmd.Flags().Float64Var(&target, "target", 0, "target cumulative probability (0,1)")
	reachCmd.Flags().IntVar(&rolls, "rolls", 0, "roll count for cumulative probability")

	simulateCmd.Flags().IntVar(&simDraws, "draws", 100000, "draws for frequency simulation")
	simulateCmd.Flags().StringVar(&itemName, "item", "", "item for draws-until trials")
	simulateCmd.Flags().IntVar(&simTrials, "trials", 1000, "trial count for --item")

	costCmd.Flags().StringVar(&itemName, "item", "", "item name")
	costCmd.Flags().Float64Var(&target, "target", 0.9, "target cumulative probability")

	rootCmd.AddCommand(ratesCmd, rollCmd, reachCmd, simulateCmd, costCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
