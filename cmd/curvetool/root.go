package main

import (
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/smallyu/go-weierstrass/pkg/ecc"
)

const envPrefix = "CURVETOOL"

// Viper keys.
const (
	keyCurve      = "curve"
	keyCompressed = "compressed"
	keyLogLevel   = "log-level"
)

var logger = zap.NewNop()

func rootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "curvetool",
		Short:         "Elliptic curve and 280-bit integer arithmetic.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			l, err := newLogger(viper.GetString(keyLogLevel))
			if err != nil {
				return err
			}
			logger = l
			return nil
		},
	}

	flags := cmd.PersistentFlags()
	flags.String(keyCurve, "wei25519", "Curve to use: "+strings.Join(ecc.Curves(), ", "))
	flags.Bool(keyCompressed, false, "Emit compressed point encodings.")
	flags.String(keyLogLevel, "warn", "Log level (debug, info, warn, error).")

	viper.SetEnvPrefix(envPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()
	for _, key := range []string{keyCurve, keyCompressed, keyLogLevel} {
		if err := viper.BindPFlag(key, flags.Lookup(key)); err != nil {
			panic(err)
		}
	}

	cmd.AddCommand(
		baseMultCmd(),
		multCmd(),
		addCmd(),
		proveCmd(),
		verifyCmd(),
		divCmd(),
		invertCmd(),
	)
	return cmd
}

func newLogger(level string) (*zap.Logger, error) {
	var lvl zapcore.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return nil, errors.Wrapf(err, "invalid log level %q", level)
	}
	cfg := zap.NewDevelopmentConfig()
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	cfg.DisableStacktrace = true
	return cfg.Build()
}

// selectedGroup returns the group configured by --curve and --compressed.
func selectedGroup() (ecc.Group, error) {
	params := &ecc.Parameters{
		Curve:      viper.GetString(keyCurve),
		Compressed: viper.GetBool(keyCompressed),
	}
	g, err := ecc.New(params)
	if err != nil {
		return nil, err
	}
	logger.Debug("selected group", zap.String("curve", g.Name()), zap.Bool("compressed", params.Compressed))
	return g, nil
}
