// cmd/partnerctl/main.go
package main

import (
	"database/sql"
	"fmt"
	"log"
	"os"
	"text/tabwriter"

	"github.com/bridgeops/partnerflow/internal/auth"
	"github.com/bridgeops/partnerflow/internal/migration"
	_ "github.com/lib/pq"
	"github.com/spf13/cobra"
)

var (
	dbConnString string
	verbose      bool
)

func init() {
	rootCmd.PersistentFlags().StringVarP(&dbConnString, "db", "d", os.Getenv("DATABASE_URL"), "Database connection string")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")

	seedAdminCmd.Flags().StringVar(&adminFirstName, "first-name", "Admin", "Admin first name")
	seedAdminCmd.Flags().StringVar(&adminLastName, "last-name", "", "Admin last name")

	rootCmd.AddCommand(migrateCmd)
	rootCmd.AddCommand(seedAdminCmd)
	rootCmd.AddCommand(queueCmd)
}

var rootCmd = &cobra.Command{
	Use:   "partnerctl",
	Short: "partnerctl is the operations CLI for the partner lifecycle service",
	Long:  `partnerctl manages the partner lifecycle database: schema migrations, admin accounts, and the verification queue.`,
}

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply the database schema",
	Long:  `Create the extensions, enum types, tables, and indexes the service needs. Safe to run repeatedly.`,
	Run: func(cmd *cobra.Command, args []string) {
		db := mustOpenDB()
		defer db.Close()

		migrator := migration.NewMigrator(db)
		if err := migrator.InitializeSchema(); err != nil {
			log.Fatalf("Failed to initialize schema: %v", err)
		}

		fmt.Println("Schema initialized successfully")
	},
}

var (
	adminFirstName string
	adminLastName  string
)

var seedAdminCmd = &cobra.Command{
	Use:   "seed-admin [email] [password]",
	Short: "Create an admin user",
	Long:  `Create a user with the ADMIN role, or promote the user if the email already exists.`,
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		email, password := args[0], args[1]

		db := mustOpenDB()
		defer db.Close()

		hash, err := auth.NewPasswordHasher().Hash(password)
		if err != nil {
			log.Fatalf("Failed to hash password: %v", err)
		}

		result, err := db.Exec(`
			INSERT INTO users (email, first_name, last_name, role, password_hash)
			VALUES ($1, $2, $3, 'ADMIN', $4)
			ON CONFLICT (email) DO UPDATE SET role = 'ADMIN'
		`, email, adminFirstName, adminLastName, hash)
		if err != nil {
			log.Fatalf("Failed to seed admin: %v", err)
		}

		if n, _ := result.RowsAffected(); n > 0 {
			fmt.Printf("Admin user %s ready\n", email)
		}
	},
}

var queueCmd = &cobra.Command{
	Use:   "queue",
	Short: "List companies pending verification",
	Long:  `Print the verification queue, oldest submission first.`,
	Run: func(cmd *cobra.Command, args []string) {
		db := mustOpenDB()
		defer db.Close()

		rows, err := db.Query(`
			SELECT id, name, contact_email, cvr_number, updated_at
			FROM companies
			WHERE verification_status = 'pending'
			ORDER BY updated_at ASC
		`)
		if err != nil {
			log.Fatalf("Failed to query verification queue: %v", err)
		}
		defer rows.Close()

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tNAME\tCONTACT\tCVR\tSUBMITTED")

		count := 0
		for rows.Next() {
			var id, name, contact string
			var cvr sql.NullString
			var updatedAt string
			if err := rows.Scan(&id, &name, &contact, &cvr, &updatedAt); err != nil {
				log.Fatalf("Failed to scan row: %v", err)
			}
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n", id, name, contact, cvr.String, updatedAt)
			count++
		}
		if err := rows.Err(); err != nil {
			log.Fatalf("Failed to read rows: %v", err)
		}

		w.Flush()
		fmt.Printf("\n%d companies pending\n", count)
	},
}

func mustOpenDB() *sql.DB {
	if dbConnString == "" {
		log.Fatal("Database connection string is required (use --db or DATABASE_URL)")
	}

	db, err := sql.Open("postgres", dbConnString)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	return db
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
