package main

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"profile-translate-api/core/domain"
	"profile-translate-api/infrastructure/storage/sqlstore"
	"profile-translate-api/pkg/config"
	"profile-translate-api/pkg/translator"
)

// app holds what PersistentPreRunE sets up for every subcommand
type app struct {
	cfg     *config.Config
	db      *sqlstore.DB
	client  *translator.Client
	cleanup []func() error
}

func (a *app) close() {
	for i := len(a.cleanup) - 1; i >= 0; i-- {
		_ = a.cleanup[i]()
	}
	a.cleanup = nil
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "admin",
		Short: "Administer the profile translation service",
		Long: `admin manages the data the translate endpoint reads: user profile
descriptions and the instance's DeepL settings. Configuration comes from the
same environment variables as the API server.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadFromEnv()
			if err != nil {
				return err
			}
			if err := cfg.Validate(); err != nil {
				return fmt.Errorf("invalid configuration: %w", err)
			}
			a.cfg = cfg

			logger := translator.NewLogger(cfg.Log)

			db, err := translator.OpenDatabase(cmd.Context(), cfg.Database)
			if err != nil {
				return err
			}
			a.db = db
			a.cleanup = append(a.cleanup, db.Close)

			cache, closeCache := translator.NewCache(cfg.Cache, logger)
			a.cleanup = append(a.cleanup, closeCache)

			opts := append(translator.FromConfig(cfg),
				translator.WithLogger(logger),
				translator.WithCache(cache),
				translator.WithDatabase(db),
			)
			client, err := translator.NewClient(opts...)
			if err != nil {
				a.close()
				return err
			}
			a.client = client
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			a.close()
		},
	}

	root.AddCommand(
		newInitSchemaCmd(a),
		newSetProfileCmd(a),
		newSetMetaCmd(a),
		newTranslateCmd(a),
	)
	return root
}

func newInitSchemaCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "init-schema",
		Short: "Create the profile and settings tables if missing",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			// OpenDatabase already ran the migration; running it again is harmless
			if err := a.db.InitSchema(cmd.Context()); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "schema ready (%s)\n", a.cfg.Database.Type)
			return nil
		},
	}
}

func newSetProfileCmd(a *app) *cobra.Command {
	var (
		description string
		noDesc      bool
	)

	cmd := &cobra.Command{
		Use:   "set-profile <userId>",
		Short: "Create or update a user's profile description",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			userID := args[0]
			if !domain.IsValidID(userID) {
				return fmt.Errorf("invalid user id %q", userID)
			}
			if !noDesc && !cmd.Flags().Changed("description") {
				return errors.New("either --description or --clear is required")
			}

			profile := &domain.UserProfile{UserID: userID}
			if !noDesc {
				profile.Description = &description
			}

			if err := a.db.Profiles().Save(cmd.Context(), profile); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "profile %s saved\n", userID)
			return nil
		},
	}

	cmd.Flags().StringVar(&description, "description", "", "profile description text")
	cmd.Flags().BoolVar(&noDesc, "clear", false, "store no description")
	cmd.MarkFlagsMutuallyExclusive("description", "clear")
	return cmd
}

func newSetMetaCmd(a *app) *cobra.Command {
	var (
		authKey  string
		pro      bool
		clearKey bool
	)

	cmd := &cobra.Command{
		Use:   "set-meta",
		Short: "Set the instance's DeepL credential and tier",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !clearKey && authKey == "" {
				return errors.New("either --deepl-auth-key or --clear-key is required")
			}

			meta := &domain.InstanceMeta{DeeplIsPro: pro}
			if !clearKey {
				meta.DeeplAuthKey = &authKey
			}

			if err := a.db.Meta().Save(cmd.Context(), meta); err != nil {
				return err
			}
			if err := a.client.InvalidateMeta(cmd.Context()); err != nil {
				return fmt.Errorf("settings saved but cache not cleared: %w", err)
			}

			tier := "free"
			if pro {
				tier = "pro"
			}
			fmt.Fprintf(cmd.OutOrStdout(), "instance settings saved (%s tier)\n", tier)
			return nil
		},
	}

	cmd.Flags().StringVar(&authKey, "deepl-auth-key", "", "DeepL authentication key")
	cmd.Flags().BoolVar(&pro, "pro", false, "use the DeepL Pro endpoint")
	cmd.Flags().BoolVar(&clearKey, "clear-key", false, "remove the DeepL key")
	cmd.MarkFlagsMutuallyExclusive("deepl-auth-key", "clear-key")
	return cmd
}

func newTranslateCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "translate <userId> <targetLang>",
		Short: "Translate a user's description and print the result as JSON",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			translation, err := a.client.TranslateDescription(cmd.Context(), args[0], args[1])
			if err != nil {
				return err
			}
			if translation == nil {
				fmt.Fprintln(cmd.OutOrStdout(), "nothing to translate")
				return nil
			}

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(translation)
		},
	}
}
