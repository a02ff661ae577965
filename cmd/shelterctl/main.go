package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/shelter-adoption/internal/audit"
	"github.com/BruksfildServices01/shelter-adoption/internal/config"
	dbpkg "github.com/BruksfildServices01/shelter-adoption/internal/db"
	"github.com/BruksfildServices01/shelter-adoption/internal/infra/repository"
	"github.com/BruksfildServices01/shelter-adoption/internal/timezone"
	ucFollowUp "github.com/BruksfildServices01/shelter-adoption/internal/usecase/followup"
	ucProfile "github.com/BruksfildServices01/shelter-adoption/internal/usecase/profile"
	ucReconcile "github.com/BruksfildServices01/shelter-adoption/internal/usecase/reconcile"
)

var rootCmd = &cobra.Command{
	Use:           "shelterctl",
	Short:         "Tareas de operación del refugio",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func main() {
	cobra.OnInitialize(initConfig)
	addPersistentFlags()
	rootCmd.AddCommand(migrateCmd(), createAdminCmd(), reconcileCmd(), followUpsCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

// Las banderas se pueden dar como SHELTER_DATABASE_URL, SHELTER_JSON, etc.
func initConfig() {
	viper.SetEnvPrefix("SHELTER")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()
}

func addPersistentFlags() {
	rootCmd.PersistentFlags().String("database-url", "", "postgres DSN (default DATABASE_URL)")
	rootCmd.PersistentFlags().Bool("json", false, "output JSON")
	_ = viper.BindPFlag("database-url", rootCmd.PersistentFlags().Lookup("database-url"))
	_ = viper.BindPFlag("json", rootCmd.PersistentFlags().Lookup("json"))
}

// loadConfig parte del .env del API y deja que las banderas lo pisen.
func loadConfig() *config.Config {
	cfg := config.Load()
	if dsn := viper.GetString("database-url"); dsn != "" {
		cfg.DBUrl = dsn
	}
	return cfg
}

func withDB(ctx context.Context, fn func(ctx context.Context, cfg *config.Config, db *gorm.DB) error) error {
	cfg := loadConfig()

	db, err := dbpkg.Open(cfg.DBUrl)
	if err != nil {
		return fmt.Errorf("connect: %w", err)
	}
	if sqlDB, err := db.DB(); err == nil {
		defer sqlDB.Close()
	}

	return fn(ctx, cfg, db)
}

func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// ======================================================
// migrate
// ======================================================

func migrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Crea/actualiza tablas e índices",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withDB(cmd.Context(), func(_ context.Context, _ *config.Config, db *gorm.DB) error {
				if err := dbpkg.Migrate(db); err != nil {
					return err
				}
				fmt.Println("migrations applied")
				return nil
			})
		},
	}
}

// ======================================================
// create-admin
// ======================================================

func createAdminCmd() *cobra.Command {
	var name, email string

	cmd := &cobra.Command{
		Use:   "create-admin",
		Short: "Crea un perfil administrador",
		RunE: func(cmd *cobra.Command, args []string) error {
			password := viper.GetString("admin-password")
			if password == "" {
				return errors.New("--admin-password or SHELTER_ADMIN_PASSWORD is required")
			}

			return withDB(cmd.Context(), func(ctx context.Context, _ *config.Config, db *gorm.DB) error {
				store := repository.NewGormStore(db)
				p, err := ucProfile.NewCreateAdmin(store).Execute(ctx, name, email, password)
				if err != nil {
					return err
				}
				if viper.GetBool("json") {
					return printJSON(p)
				}
				fmt.Printf("admin created id=%d email=%s\n", p.ID, p.Email)
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&name, "name", "Administrador", "display name")
	cmd.Flags().StringVar(&email, "email", "", "login email")
	cmd.Flags().String("admin-password", "", "password (prefer SHELTER_ADMIN_PASSWORD)")
	_ = viper.BindPFlag("admin-password", cmd.Flags().Lookup("admin-password"))
	_ = cmd.MarkFlagRequired("email")
	return cmd
}

// ======================================================
// reconcile
// ======================================================

func reconcileCmd() *cobra.Command {
	var dryRun bool

	cmd := &cobra.Command{
		Use:   "reconcile",
		Short: "Corrige el estado de mascotas según solicitudes y adopciones",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withDB(cmd.Context(), func(ctx context.Context, _ *config.Config, db *gorm.DB) error {
				dispatcher := audit.NewDispatcher(audit.New(db))
				defer dispatcher.Close()

				fixes, err := ucReconcile.New(repository.NewGormStore(db), dispatcher).Run(ctx, nil, dryRun)
				if err != nil {
					return err
				}
				if viper.GetBool("json") {
					return printJSON(fixes)
				}

				tw := table.NewWriter()
				tw.SetOutputMirror(os.Stdout)
				tw.AppendHeader(table.Row{"Pet", "Name", "From", "To", "Available"})
				for _, f := range fixes {
					tw.AppendRow(table.Row{f.PetID, f.Name, f.From, f.To, f.Available})
				}
				tw.AppendFooter(table.Row{"", "", "", "fixes", len(fixes)})
				tw.Render()

				if dryRun {
					fmt.Println("dry run: nothing was written")
				}
				return nil
			})
		},
	}

	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "only report")
	return cmd
}

// ======================================================
// followups
// ======================================================

func followUpsCmd() *cobra.Command {
	parent := &cobra.Command{Use: "followups", Short: "Seguimientos post-adopción"}

	parent.AddCommand(&cobra.Command{
		Use:   "due",
		Short: "Lista los seguimientos abiertos que vencen hasta mañana",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withDB(cmd.Context(), func(ctx context.Context, cfg *config.Config, db *gorm.DB) error {
				loc := timezone.Location(cfg.Timezone)
				views, err := ucFollowUp.NewListDue(repository.NewGormStore(db), loc).Run(ctx)
				if err != nil {
					return err
				}
				if viper.GetBool("json") {
					return printJSON(views)
				}

				tw := table.NewWriter()
				tw.SetOutputMirror(os.Stdout)
				tw.AppendHeader(table.Row{"ID", "Adoption", "Checkpoint", "Target", "State"})
				for _, v := range views {
					tw.AppendRow(table.Row{
						v.ID,
						v.AdoptionID,
						v.Checkpoint,
						v.TargetDate.In(loc).Format("2006-01-02"),
						v.State,
					})
				}
				tw.Render()
				return nil
			})
		},
	})

	return parent
}
