package main

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"astrokalki/models"
	"astrokalki/services"

	"github.com/spf13/cobra"
	"golang.org/x/crypto/bcrypt"
)

var (
	karmaForm models.KarmaForm
	debtScan  models.DebtScanInput
	password  string
)

var karmaCmd = &cobra.Command{
	Use:   "karma",
	Short: "Print the demo Karma DNA reading as JSON",
	RunE: func(cmd *cobra.Command, _ []string) error {
		return printJSON(cmd.OutOrStdout(), services.ComputeKarmaDNA(karmaForm))
	},
}

var debtsCmd = &cobra.Command{
	Use:   "debts",
	Short: "Print the karmic debt scan as JSON",
	RunE: func(cmd *cobra.Command, _ []string) error {
		return printJSON(cmd.OutOrStdout(), services.ScanKarmicDebts(debtScan.Name, debtScan.DOB))
	},
}

var hashPasswordCmd = &cobra.Command{
	Use:   "hash-password",
	Short: "Print a bcrypt hash for ADMIN_PASSWORD_HASH",
	Long:  "Hashes --password, or the first line of stdin when the flag is omitted.",
	RunE: func(cmd *cobra.Command, _ []string) error {
		pw := password
		if pw == "" {
			line, err := readLine(cmd.InOrStdin())
			if err != nil {
				return err
			}
			pw = line
		}
		hash, err := hashPassword(pw)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), hash)
		return nil
	},
}

func init() {
	karmaCmd.Flags().StringVar(&karmaForm.Name, "name", "", "full name")
	karmaCmd.Flags().StringVar(&karmaForm.Date, "date", "", "birth date (YYYY-MM-DD)")
	karmaCmd.Flags().StringVar(&karmaForm.Time, "time", "", "birth time")
	karmaCmd.Flags().StringVar(&karmaForm.Place, "place", "", "birth place")
	_ = karmaCmd.MarkFlagRequired("name")
	_ = karmaCmd.MarkFlagRequired("date")

	debtsCmd.Flags().StringVar(&debtScan.Name, "name", "", "full name")
	debtsCmd.Flags().StringVar(&debtScan.DOB, "dob", "", "birth date (YYYY-MM-DD)")
	_ = debtsCmd.MarkFlagRequired("name")

	hashPasswordCmd.Flags().StringVar(&password, "password", "", "password to hash")
}

// hashPassword enforces the same minimum length as the admin login.
func hashPassword(pw string) (string, error) {
	if len(pw) < 8 {
		return "", errors.New("password must be at least 8 characters")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(pw), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hash), nil
}

func readLine(r io.Reader) (string, error) {
	sc := bufio.NewScanner(r)
	if !sc.Scan() {
		if err := sc.Err(); err != nil {
			return "", err
		}
		return "", errors.New("no password given")
	}
	return strings.TrimRight(sc.Text(), "\r\n"), nil
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
