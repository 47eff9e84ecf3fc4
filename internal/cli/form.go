package cli

import (
	"github.com/lumbunggroup/lumbung-backend/config"
	"github.com/lumbunggroup/lumbung-backend/internal/tui"
	"github.com/lumbunggroup/lumbung-backend/logger"
	"github.com/lumbunggroup/lumbung-backend/models/contact"
	"github.com/lumbunggroup/lumbung-backend/services"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var loadConfig = config.LoadConfig

func FormCmd() *cobra.Command {
	var logFile string
	cmd := &cobra.Command{
		Use:   "form",
		Short: "Fill in and send the contact form from the terminal",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runForm(logFile)
		},
	}
	cmd.Flags().StringVar(&logFile, "log-file", "", "Write delivery logs to this file")
	return cmd
}

func runForm(logFile string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	// The form owns the terminal; logs go to the file or nowhere.
	log := zap.NewNop().Sugar()
	if logFile != "" {
		log, err = logger.NewFileLogger(logFile)
		if err != nil {
			return err
		}
		defer func() { _ = log.Sync() }()
	}

	schema := contact.ContactSchema()
	ctrl := contact.NewController(schema, services.NewDeliverer(cfg, schema, log), contact.WithLogger(log))
	defer ctrl.Dispose()

	return runTUI(tui.NewModel(ctrl, cfg.Contact.DeliveryTimeout()))
}
