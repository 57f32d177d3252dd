package api

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/tripal/tripal-blast/internal/config"
	"github.com/tripal/tripal-blast/pkg/common/code"
	"github.com/tripal/tripal-blast/pkg/utils"
)

func NewToken() *cobra.Command {
	var uid int64
	cmd := &cobra.Command{
		Use:          "token",
		Long:         "Print a bearer token for a user",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			auth := config.Global().Auth
			token, err := utils.SignJWT(auth.JWTSecret, uid, auth.TokenTTL)
			if err != nil {
				return code.SignTokenErr.WithErr(err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), token)
			return nil
		},
	}
	cmd.Flags().Int64Var(&uid, "uid", 1, "user id the token acts as")
	return cmd
}
