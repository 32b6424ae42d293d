package cli

import (
	"fmt"
	"log/slog"
	"os"
	"slices"

	flag "github.com/spf13/pflag"
)

// SubCommand represents CLI subcommands
type SubCommand string

const (
	LookupSubCommand SubCommand = "lookup"
	ExportSubCommand SubCommand = "export"
)

var KnownSubCommands = []SubCommand{LookupSubCommand, ExportSubCommand}

// Flags holds all CLI flags and configuration
type Flags struct {
	SubCommand   SubCommand
	LogLevel     slog.Level
	LookupConfig LookupConfig
	ExportConfig ExportConfig
	ShowHelp     bool
	ShowVersion  bool
	MaxWorkers   int
}

// ParseFlags parses command line arguments and returns configuration
func ParseFlags(args []string, version string) (*Flags, error) {
	flags := &Flags{
		MaxWorkers: 3, // Default number of lookup workers
	}

	// Global flags
	defaults := flag.NewFlagSet("loot-scout", flag.ContinueOnError)
	defaults.BoolVarP(&flags.ShowHelp, "help", "h", false, "print this help and exit")
	defaults.BoolVarP(&flags.ShowVersion, "version", "V", false, "print program version and exit")

	var logLevelStr string
	defaults.StringVar(&logLevelStr, "log-level", "info", "verbosity level. one of: debug, info, warn, error")
	defaults.IntVar(&flags.MaxWorkers, "workers", 3, "number of concurrent item lookups")

	var storePath string
	defaults.StringVar(&storePath, "store", "", "path of the persisted loot store (default: <cwd>/loot-data.json)")

	// Determine subcommand
	var subcommand string
	if len(args) > 1 {
		subcommand = args[1]
	}

	var flagset *flag.FlagSet
	lookupConfig := LookupConfig{}
	exportConfig := ExportConfig{}

	switch subcommand {
	case string(LookupSubCommand):
		flagset = flag.NewFlagSet("lookup", flag.ExitOnError)
		flagset.StringArrayVar(&lookupConfig.OutputFiles, "out", []string{}, "write results to file (default: stdout)")
		flagset.BoolVar(&lookupConfig.Save, "save", false, "persist results to the loot store")
		flagset.BoolVar(&lookupConfig.Refresh, "refresh", false, "do not supplement thin results from the loot store")
		flagset.BoolVar(&lookupConfig.ByID, "by-id", false, "treat arguments as item ids and resolve names through garland")
		flagset.AddFlagSet(defaults)

	case string(ExportSubCommand):
		flagset = flag.NewFlagSet("export", flag.ExitOnError)
		flagset.StringVar(&exportConfig.Dir, "dir", "export", "directory for per-item JSON files")
		flagset.AddFlagSet(defaults)

	default:
		flagset = defaults
	}

	// Parse flags
	if err := flagset.Parse(args); err != nil {
		return nil, fmt.Errorf("failed to parse flags: %w", err)
	}

	// Handle help and version
	if flags.ShowHelp {
		printUsage(flagset)
		os.Exit(0)
	}

	if flags.ShowVersion {
		fmt.Println(version)
		os.Exit(0)
	}

	// Validate subcommand
	if subcommand == "" || !slices.Contains(KnownSubCommands, SubCommand(subcommand)) {
		printUsage(flagset)
		return nil, fmt.Errorf("unknown subcommand: %s", subcommand)
	}

	// Parse log level
	logLevelMap := map[string]slog.Level{
		"debug": slog.LevelDebug,
		"info":  slog.LevelInfo,
		"warn":  slog.LevelWarn,
		"error": slog.LevelError,
	}

	logLevel, exists := logLevelMap[logLevelStr]
	if !exists {
		return nil, fmt.Errorf("unknown log level: %s", logLevelStr)
	}

	// Item names (or ids with --by-id) are the positional arguments after
	// the subcommand.
	if subcommand == string(LookupSubCommand) {
		lookupConfig.Items = flagset.Args()[2:]
		if len(lookupConfig.Items) == 0 {
			return nil, fmt.Errorf("lookup requires at least one item name")
		}
	}

	// Assign parsed values
	flags.SubCommand = SubCommand(subcommand)
	flags.LogLevel = logLevel
	flags.LookupConfig = lookupConfig
	flags.ExportConfig = exportConfig

	flags.LookupConfig.MaxWorkers = flags.MaxWorkers
	flags.LookupConfig.StorePath = storePath
	flags.ExportConfig.StorePath = storePath

	return flags, nil
}

// printUsage prints usage information
func printUsage(flagset *flag.FlagSet) {
	fmt.Println("usage: loot-scout <lookup|export> [options] [item ...]")
	fmt.Println()
	fmt.Println("Commands:")
	fmt.Println("  lookup    Scrape loot sources for the named items from the wiki")
	fmt.Println("  export    Validate the loot store and write one JSON file per item")
	fmt.Println()
	fmt.Println("Options:")
	flagset.PrintDefaults()
}
