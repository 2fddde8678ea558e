package main

import (
	"fmt"

	"xestetik/internal/handlers"
	"xestetik/internal/services"

	"github.com/spf13/cobra"
)

var qrCmd = &cobra.Command{
	Use:   "qr",
	Short: "Regenerate the social media QR images",
	RunE: func(cmd *cobra.Command, args []string) error {
		assets := services.NewAssetService(cfg.Server.StaticDir, "/static")
		written := services.NewQRService(assets, handlers.QRTargets(cfg.Social)).Generate()
		fmt.Fprintf(cmd.OutOrStdout(), "%d QR images written to %s\n", written, assets.Path(services.QRDir))
		return nil
	},
}
