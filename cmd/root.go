package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/sdcoffey/atlas/env"
	"github.com/sdcoffey/atlas/listing"
	"github.com/sdcoffey/atlas/tree"
)

var (
	showHidden    bool
	detailed      bool
	reverseOrder  bool
	sortByTime    bool
	humanReadable bool
	filterBy      string

	rootCmd = &cobra.Command{
		Use:   "atlas [path]",
		Short: "List entries from a captured directory structure",
		Long: `atlas renders ls-style listings over a directory tree that was
captured once into a structure document, without touching the live
filesystem.`,
		Args: cobra.MaximumNArgs(1),
		RunE: runList,
	}
)

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("structure", "", "structure document (default $ATLAS_HOME/structure.json)")
	rootCmd.PersistentFlags().String("log-level", "warning", "Logging level (trace, debug, info, warning, error)")
	viper.BindPFlag("structure", rootCmd.PersistentFlags().Lookup("structure"))
	viper.BindPFlag("log-level", rootCmd.PersistentFlags().Lookup("log-level"))

	rootCmd.Flags().BoolVarP(&showHidden, "all", "A", false, "include entries whose name starts with '.'")
	rootCmd.Flags().BoolVarP(&detailed, "long", "l", false, "long format: permissions, size, time, name")
	rootCmd.Flags().BoolVarP(&reverseOrder, "reverse", "r", false, "reverse the final ordering")
	rootCmd.Flags().BoolVarP(&sortByTime, "time", "t", false, "sort by modification time")
	rootCmd.Flags().BoolVarP(&humanReadable, "human", "H", false, "human-readable sizes")
	rootCmd.Flags().StringVar(&filterBy, "filter", "", "limit the listing to 'file' or 'dir' entries")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(shellCmd)
}

func initConfig() {
	if home, err := env.AtlasHome(); err == nil {
		viper.AddConfigPath(home)
	}
	viper.AddConfigPath(".")
	viper.SetConfigType("yaml")
	viper.SetConfigName(".atlas")

	viper.SetEnvPrefix("atlas")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		logrus.WithField("config", viper.ConfigFileUsed()).Debug("using config file")
	}

	if level, err := logrus.ParseLevel(viper.GetString("log-level")); err == nil {
		logrus.SetLevel(level)
	}
}

func loadTree() *tree.Tree {
	docPath := viper.GetString("structure")
	if docPath == "" {
		docPath = env.StructurePath()
	}

	file, err := os.Open(docPath)
	if err != nil {
		logrus.WithError(err).Fatal("cannot open structure document")
	}
	defer file.Close()

	doc, err := tree.ParseDocument(file, filepath.Ext(docPath))
	if err != nil {
		logrus.WithError(err).Fatal("cannot parse structure document")
	}

	t, err := tree.Load(doc)
	if err != nil {
		logrus.WithError(err).Fatal("cannot load structure document")
	}
	logrus.WithField("document", docPath).Debug("structure document loaded")

	return t
}

func runList(cmd *cobra.Command, args []string) error {
	var path string
	if len(args) > 0 {
		path = args[0]
	}

	opts := listing.Options{
		ShowHidden:    showHidden,
		Detailed:      detailed,
		Reverse:       reverseOrder,
		SortByTime:    sortByTime,
		HumanReadable: humanReadable,
		FilterBy:      filterBy,
	}

	// Unknown paths and bad filters are reported, not fatal.
	if _, report, err := listing.List(loadTree(), path, opts); err != nil {
		fmt.Fprintf(cmd.OutOrStdout(), "error: %s\n", err)
	} else if report != "" {
		fmt.Fprintln(cmd.OutOrStdout(), report)
	}

	return nil
}
