package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os/exec"
	"runtime"
	"time"

	plaid "github.com/Veraticus/go-plaid"
	"github.com/Veraticus/go-plaid/internal/cli"
	"github.com/Veraticus/go-plaid/internal/linkstore"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

type plaidLinkSuccess struct {
	AccessToken     string
	ItemID          string
	InstitutionID   string
	InstitutionName string
}

func linkCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "link",
		Short: "Connect a bank account via Plaid Link",
		Long: `Connect a bank account using Plaid Link.

This command will:
1. Start a local web server
2. Open Plaid Link in your browser
3. Let you connect a bank account
4. Save the access token for future use

You can run this multiple times to add more accounts.`,
		RunE: runLink,
	}

	cmd.Flags().String("alias", "", "friendly name to store for the linked item")
	cmd.Flags().Int("port", 8080, "local port for the Link page")

	return cmd
}

func runLink(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	alias, _ := cmd.Flags().GetString("alias")
	port, _ := cmd.Flags().GetInt("port")

	client, err := newPlaidClient()
	if err != nil {
		return err
	}

	slog.Info("Starting Plaid Link flow", "environment", string(plaidEnvironment()))

	linkToken, err := client.CreateLinkToken(ctx, plaid.CreateLinkTokenRequest{
		ClientName:   "plaidctl",
		Language:     "en",
		CountryCodes: []string{"US"},
		User:         plaid.NewLinkUser("plaidctl-" + uuid.NewString()),
		Products:     []string{"transactions"},
	})
	if err != nil {
		return fmt.Errorf("failed to create link token: %w", err)
	}

	successChan := make(chan plaidLinkSuccess, 1)
	errorChan := make(chan error, 1)

	mux := http.NewServeMux()
	mux.HandleFunc("/", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		_, _ = fmt.Fprintf(w, linkPageHTML, linkToken.LinkToken)
	})
	mux.HandleFunc("/exchange", func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			PublicToken string `json:"public_token"`
			Metadata    struct {
				Institution struct {
					Name string `json:"name"`
					ID   string `json:"institution_id"`
				} `json:"institution"`
			} `json:"metadata"`
		}

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			_ = json.NewEncoder(w).Encode(map[string]any{"success": false, "error": "Invalid request"})
			return
		}

		exchange, err := client.ExchangePublicToken(r.Context(), req.PublicToken)
		if err != nil {
			errorChan <- fmt.Errorf("failed to exchange token: %w", err)
			_ = json.NewEncoder(w).Encode(map[string]any{"success": false, "error": "Failed to exchange token"})
			return
		}

		successChan <- plaidLinkSuccess{
			AccessToken:     exchange.AccessToken,
			ItemID:          exchange.ItemID,
			InstitutionID:   req.Metadata.Institution.ID,
			InstitutionName: req.Metadata.Institution.Name,
		}
		_ = json.NewEncoder(w).Encode(map[string]any{"success": true})
	})

	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", port),
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
	}
	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errorChan <- fmt.Errorf("link server failed: %w", err)
		}
	}()
	defer func() { _ = server.Close() }()

	url := fmt.Sprintf("http://localhost:%d", port)
	fmt.Println(cli.Title("Plaid Link"))
	fmt.Printf("Open %s in your browser to connect an account.\n", url)
	openBrowser(url)

	select {
	case success := <-successChan:
		return saveLinkedItem(ctx, success, alias)
	case err := <-errorChan:
		return err
	case <-ctx.Done():
		return ctx.Err()
	}
}

func saveLinkedItem(ctx context.Context, success plaidLinkSuccess, alias string) error {
	store, err := openStore()
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	item := linkstore.LinkedItem{
		ItemID:          success.ItemID,
		AccessToken:     success.AccessToken,
		InstitutionID:   success.InstitutionID,
		InstitutionName: success.InstitutionName,
		Alias:           alias,
		Environment:     string(plaidEnvironment()),
	}
	if err := store.Save(ctx, item); err != nil {
		return fmt.Errorf("failed to save linked item: %w", err)
	}

	name := success.InstitutionName
	if name == "" {
		name = success.ItemID
	}
	fmt.Println(cli.Success(fmt.Sprintf("✓ Linked %s", name)))
	return nil
}

// openBrowser makes a best-effort attempt to open url in the default
// browser; the user can always follow the printed link instead.
func openBrowser(url string) {
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "darwin":
		cmd = exec.Command("open", url)
	case "linux":
		cmd = exec.Command("xdg-open", url)
	default:
		return
	}
	if err := cmd.Start(); err != nil {
		slog.Debug("Failed to open browser", "error", err)
	}
}

const linkPageHTML = `<!DOCTYPE html>
<html>
<head>
    <title>Connect Your Bank Account - plaidctl</title>
    <script src="https://cdn.plaid.com/link/v2/stable/link-initialize.js"></script>
    <style>
        body { font-family: -apple-system, BlinkMacSystemFont, "Segoe UI", Roboto, sans-serif;
               display: flex; align-items: center; justify-content: center; height: 100vh;
               margin: 0; background-color: #f5f5f5; }
        .container { text-align: center; background: white; padding: 40px; border-radius: 8px;
                    box-shadow: 0 2px 10px rgba(0,0,0,0.1); }
        button { background-color: #10B981; color: white; padding: 12px 24px;
                font-size: 16px; border: none; border-radius: 4px; cursor: pointer; }
        .error { color: #d32f2f; margin-top: 20px; }
        .success { color: #388e3c; margin-top: 20px; }
    </style>
</head>
<body>
    <div class="container">
        <h1>Connect Your Bank Account</h1>
        <p>Click the button below to securely connect your bank account through Plaid.</p>
        <button id="link-button">Connect Bank Account</button>
        <div id="message"></div>
    </div>

    <script>
    const linkHandler = Plaid.create({
        token: '%s',
        onSuccess: (public_token, metadata) => {
            fetch('/exchange', {
                method: 'POST',
                headers: { 'Content-Type': 'application/json' },
                body: JSON.stringify({ public_token, metadata })
            })
            .then(response => response.json())
            .then(data => {
                document.getElementById('message').innerHTML = data.success
                    ? '<div class="success">Account connected. You can close this window.</div>'
                    : '<div class="error">' + (data.error || 'Connection failed') + '</div>';
            })
            .catch(error => {
                document.getElementById('message').innerHTML =
                    '<div class="error">Network error: ' + error + '</div>';
            });
        },
        onExit: (err, metadata) => {
            if (err != null) {
                document.getElementById('message').innerHTML =
                    '<div class="error">Connection canceled or failed.</div>';
            }
        }
    });

    document.getElementById('link-button').onclick = () => {
        linkHandler.open();
    };
    </script>
</body>
</html>`
