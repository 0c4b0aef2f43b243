package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"dxgen/pkg/compgen"
)

var (
	configPath string
	sourcePath string
	outputDir  string
	nestedPath string
	basePath   string
)

var rootCmd = &cobra.Command{
	Use:   "dxgen [-c <config>] [-s <source metadata>] [-o <outputDir>] [<source...>]",
	Short: "Generate component descriptors from widget metadata",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := buildConfig()
		if err != nil {
			return err
		}

		// positional args are alternative source metadata files
		if len(args) > 0 {
			for _, src := range args {
				cfg.SourceMetadataFilePath = src
				if err := gen(cfg); err != nil {
					return err
				}
			}
			return nil
		}

		if cfg.SourceMetadataFilePath == "" {
			return cmd.Help()
		}
		return gen(cfg)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "generator config file")
	rootCmd.PersistentFlags().StringVarP(&sourcePath, "source", "s", "", "source metadata file")
	rootCmd.PersistentFlags().StringVarP(&outputDir, "output", "o", "", "output directory")
	rootCmd.PersistentFlags().StringVar(&nestedPath, "nested-path", "", "sub-location for nested component descriptors")
	rootCmd.PersistentFlags().StringVar(&basePath, "base-path", "", "sub-location for base class descriptors")
}

// buildConfig merges flag overrides over the config file over the defaults.
func buildConfig() (compgen.Config, error) {
	cfg := compgen.DefaultConfig()

	if configPath != "" {
		loaded, err := compgen.LoadConfig(configPath)
		if err != nil {
			return cfg, err
		}
		cfg = loaded
	}

	if sourcePath != "" {
		cfg.SourceMetadataFilePath = sourcePath
	}
	if outputDir != "" {
		cfg.OutputFolderPath = outputDir
	}
	if cfg.OutputFolderPath == "" {
		cfg.OutputFolderPath = "./metadata"
	}
	if nestedPath != "" {
		cfg.NestedPathPart = nestedPath
	}
	if basePath != "" {
		cfg.BasePathPart = basePath
	}

	return cfg, nil
}

func gen(cfg compgen.Config) error {
	fmt.Printf("generating from %s into %s\n", cfg.SourceMetadataFilePath, cfg.OutputFolderPath)
	return compgen.Generate(cfg)
}
