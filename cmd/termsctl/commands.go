package main

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"walletgate/internal/consentflow/livesync"
	"walletgate/internal/consentflow/models"
	"walletgate/internal/consentflow/terms"
	jwttoken "walletgate/internal/jwt_token"
	"walletgate/internal/platform/config"
)

// errTermsUpdated makes `diff --exit-code` fail when the files differ.
var errTermsUpdated = errors.New("terms differ")

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "termsctl",
		Short:         "Inspect and build consent-flow terms",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newInitCmd(), newDiffCmd(), newPruneCmd(), newTokenCmd())
	return root
}

func newInitCmd() *cobra.Command {
	var (
		user     models.User
		contract string
		out      string
	)
	cmd := &cobra.Command{
		Use:   "init --contract FILE --did DID",
		Short: "Build the minimum terms a user can accept for a contract",
		Long: `Reads a contract (YAML or JSON) and prints the smallest terms that satisfy
every required permission, with personal fields filled from the user flags.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if user.DID == "" {
				return errors.New("--did is required")
			}
			c, err := readContract(contract)
			if err != nil {
				return err
			}
			return writeTerms(cmd.OutOrStdout(), out, terms.MinimumTerms(c, user))
		},
	}
	cmd.Flags().StringVarP(&contract, "contract", "c", "", "contract file (.yaml, .yml or .json)")
	cmd.Flags().StringVar(&user.DID, "did", "", "holder DID")
	cmd.Flags().StringVar(&user.Name, "name", "", "holder display name")
	cmd.Flags().StringVar(&user.Email, "email", "", "holder email")
	cmd.Flags().StringVar(&user.Image, "image", "", "holder image URL")
	cmd.Flags().StringVarP(&out, "out", "o", "", "write terms to this file instead of stdout")
	_ = cmd.MarkFlagRequired("contract")
	return cmd
}

func newDiffCmd() *cobra.Command {
	var exitCode bool
	cmd := &cobra.Command{
		Use:   "diff SAVED EDITED",
		Short: "Report whether edited terms need saving",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			saved, err := readTerms(args[0])
			if err != nil {
				return err
			}
			edited, err := readTerms(args[1])
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			if !terms.IsUpdated(saved, edited) {
				fmt.Fprintln(w, "unchanged")
				return nil
			}
			fmt.Fprintln(w, "updated")
			fmt.Fprint(w, terms.Diff(saved, edited))
			if exitCode {
				return errTermsUpdated
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&exitCode, "exit-code", false, "exit non-zero when the terms differ")
	return cmd
}

func newPruneCmd() *cobra.Command {
	var (
		validFile string
		out       string
	)
	cmd := &cobra.Command{
		Use:   "prune TERMS --valid FILE",
		Short: "Drop shared URIs that are no longer in the holder's wallet",
		Long: `Removes every shared credential URI not listed in the valid file
(one URI per line, # comments allowed) and prints the pruned terms.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := readTerms(args[0])
			if err != nil {
				return err
			}
			valid, err := readURISet(validFile)
			if err != nil {
				return err
			}
			pruned, removed := livesync.PruneStale(t, valid)
			fmt.Fprintf(cmd.ErrOrStderr(), "pruned %d stale uri(s)\n", removed)
			return writeTerms(cmd.OutOrStdout(), out, pruned)
		},
	}
	cmd.Flags().StringVar(&validFile, "valid", "", "file listing URIs still in the wallet")
	cmd.Flags().StringVarP(&out, "out", "o", "", "write terms to this file instead of stdout")
	_ = cmd.MarkFlagRequired("valid")
	return cmd
}

func newTokenCmd() *cobra.Command {
	var (
		user models.User
		ttl  time.Duration
		key  string
	)
	cmd := &cobra.Command{
		Use:   "token --did DID",
		Short: "Mint a bearer token for local development",
		Long: `Signs a token with JWT_SIGNING_KEY (or the development default) using the
issuer and audience the server reads from the environment.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := config.FromEnv()
			if key == "" {
				key = cfg.JWT.SigningKey
			}
			if ttl <= 0 {
				ttl = cfg.JWT.TokenTTL
			}
			if user.ProfileType != "" {
				user.SwitchedProfile = true
			}
			svc := jwttoken.NewJWTService(key, cfg.JWT.Issuer, cfg.JWT.Audience, ttl)
			token, err := svc.IssueToken(user)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), token)
			return nil
		},
	}
	cmd.Flags().StringVar(&user.DID, "did", "", "holder DID (token subject)")
	cmd.Flags().StringVar(&user.Name, "name", "", "holder display name")
	cmd.Flags().StringVar(&user.Email, "email", "", "holder email")
	cmd.Flags().StringVar((*string)(&user.ProfileType), "profile", "", "switched profile type (child, parent, service)")
	cmd.Flags().StringVar(&user.GuardianDID, "guardian", "", "guardian DID for child profiles")
	cmd.Flags().DurationVar(&ttl, "ttl", 0, "token lifetime (default TOKEN_TTL)")
	cmd.Flags().StringVar(&key, "key", "", "signing key (default JWT_SIGNING_KEY)")
	return cmd
}

func readContract(path string) (models.Contract, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return models.Contract{}, fmt.Errorf("read contract: %w", err)
	}
	var c models.Contract
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		err = json.Unmarshal(raw, &c)
	default:
		err = yaml.Unmarshal(raw, &c)
	}
	if err != nil {
		return models.Contract{}, fmt.Errorf("parse contract %s: %w", path, err)
	}
	c.Normalize()
	return c, nil
}

func readTerms(path string) (models.Terms, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return models.Terms{}, fmt.Errorf("read terms: %w", err)
	}
	var t models.Terms
	if err := json.Unmarshal(raw, &t); err != nil {
		return models.Terms{}, fmt.Errorf("parse terms %s: %w", path, err)
	}
	return t, nil
}

func writeTerms(stdout io.Writer, path string, t models.Terms) error {
	raw, err := json.MarshalIndent(t, "", "  ")
	if err != nil {
		return fmt.Errorf("encode terms: %w", err)
	}
	raw = append(raw, '\n')
	if path == "" {
		_, err = stdout.Write(raw)
		return err
	}
	return os.WriteFile(path, raw, 0o644)
}

func readURISet(path string) (map[string]struct{}, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("read valid uris: %w", err)
	}
	defer f.Close()

	set := make(map[string]struct{})
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		set[line] = struct{}{}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read valid uris: %w", err)
	}
	return set, nil
}
