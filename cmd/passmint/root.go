package main

import (
	"fmt"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"

	"github.com/passmint/passmint-go/internal/crypto"
	"github.com/passmint/passmint-go/internal/model"
	"github.com/passmint/passmint-go/internal/service"
)

// generateConfig holds the flags of the root command.
type generateConfig struct {
	length      int
	noLowercase bool
	noUppercase bool
	noNumbers   bool
	noSymbols   bool
	count       int
	strength    bool
	hash        bool
	copyFirst   bool
}

// NewRootCmd creates the root command. Running it without a subcommand
// generates passwords.
func NewRootCmd() *cobra.Command {
	cfg := &generateConfig{}

	cmd := &cobra.Command{
		Use:   "passmint",
		Short: "Generate random passwords and rate their strength",
		Long: `passmint generates cryptographically secure random passwords from
configurable character classes and rates password strength with a
simple length-plus-coverage heuristic.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runGenerate(cmd, cfg)
		},
	}

	cmd.Flags().IntVarP(&cfg.length, "length", "l", crypto.DefaultLength, "password length")
	cmd.Flags().BoolVar(&cfg.noLowercase, "no-lowercase", false, "exclude lowercase letters")
	cmd.Flags().BoolVar(&cfg.noUppercase, "no-uppercase", false, "exclude uppercase letters")
	cmd.Flags().BoolVar(&cfg.noNumbers, "no-numbers", false, "exclude digits")
	cmd.Flags().BoolVar(&cfg.noSymbols, "no-symbols", false, "exclude symbols")
	cmd.Flags().IntVarP(&cfg.count, "count", "c", 1, "number of passwords to generate")
	cmd.Flags().BoolVarP(&cfg.strength, "strength", "s", false, "print the strength tier for each password")
	cmd.Flags().BoolVar(&cfg.hash, "hash", false, "print an Argon2id hash for each password")
	cmd.Flags().BoolVar(&cfg.copyFirst, "copy", false, "copy the first password to the clipboard")

	// Validation errors from RunE are reported bare, but a flag the
	// parser rejects still gets the usage text on stderr.
	cmd.SetFlagErrorFunc(func(c *cobra.Command, err error) error {
		c.PrintErr(c.UsageString())
		return err
	})

	cmd.AddCommand(NewScoreCmd())
	cmd.AddCommand(NewServeCmd())

	return cmd
}

// runGenerate executes the root command.
func runGenerate(cmd *cobra.Command, cfg *generateConfig) error {
	// The service treats zero length and count as "absent"; flag values
	// are always explicit, so bound-check both before the request is built.
	switch {
	case cfg.length < crypto.MinLength:
		return crypto.ErrLengthTooShort
	case cfg.length > crypto.MaxLength:
		return crypto.ErrLengthTooLong
	case cfg.count < crypto.MinCount || cfg.count > crypto.MaxCount:
		return crypto.ErrCountOutOfRange
	}

	enabled := func(disabled bool) *bool {
		v := !disabled
		return &v
	}

	svc := service.NewGeneratorService()
	resp, err := svc.Generate(model.GenerateRequest{
		Length:    cfg.length,
		Lowercase: enabled(cfg.noLowercase),
		Uppercase: enabled(cfg.noUppercase),
		Numbers:   enabled(cfg.noNumbers),
		Symbols:   enabled(cfg.noSymbols),
		Count:     cfg.count,
		Strength:  cfg.strength,
		Hash:      cfg.hash,
	})
	if err != nil {
		return err
	}

	for i, p := range resp.Passwords {
		line := p.Password
		if resp.Count > 1 {
			line = fmt.Sprintf("%d: %s", i+1, p.Password)
		}
		if p.Strength != nil {
			line = fmt.Sprintf("%s (%s)", line, p.Strength.Tier)
		}
		cmd.Println(line)
		if p.Hash != "" {
			cmd.Println("  " + p.Hash)
		}
	}

	if cfg.copyFirst {
		if err := clipboard.WriteAll(resp.Passwords[0].Password); err != nil {
			return fmt.Errorf("copying to clipboard: %w", err)
		}
	}

	return nil
}
