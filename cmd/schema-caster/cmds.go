package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/apache/arrow-go/v18/arrow"
	"github.com/pkg/errors"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"schema-caster/convert"
	"schema-caster/iceberg"
	"schema-caster/internal/config"
	"schema-caster/internal/diagnostic"
	"schema-caster/internal/logging"
	"schema-caster/internal/schemafile"
	"schema-caster/options"
	"schema-caster/primitive"
)

var ErrUnstable = errors.New("schema is not stable across a round trip")

func fatal(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	fmt.Fprintf(os.Stderr, "Error: %s\n", msg)
	os.Exit(1)
}

// Represents the state used when processing a command.
type Action struct {
	cmd    *cobra.Command
	cfg    *config.Config
	logger *zap.Logger
}

func newAction(cmd *cobra.Command) (*Action, error) {
	v := config.New()

	for key, flag := range map[string]string{
		config.KeyLogLevel:  "log-level",
		config.KeyFormat:    "format",
		config.KeyStrict:    "strict",
		config.KeyAllowLoss: "allow-loss",
		config.KeySchemaID:  "schema-id",
	} {
		if err := bindFlag(v, cmd, key, flag); err != nil {
			return nil, err
		}
	}

	configPath, _ := cmd.Flags().GetString("config")

	cfg, err := config.Load(v, configPath)
	if err != nil {
		return nil, errors.Wrapf(err, "can't load config %q", configPath)
	}

	logger, err := logging.New(cfg.LogLevel)
	if err != nil {
		return nil, err
	}

	return &Action{cmd: cmd, cfg: cfg, logger: logger}, nil
}

func bindFlag(v *viper.Viper, cmd *cobra.Command, key, name string) error {
	flag := cmd.Flags().Lookup(name)
	if flag == nil {
		return nil
	}

	return v.BindPFlag(key, flag)
}

func (a *Action) getString(name string) string {
	result, _ := a.cmd.Flags().GetString(name)
	return result
}

func (a *Action) printf(format string, args ...interface{}) {
	fmt.Fprintf(a.cmd.OutOrStdout(), format, args...)
}

func (a *Action) Close() {
	_ = a.logger.Sync()
}

func fieldNames(schema *arrow.Schema) []string {
	return lo.Map(schema.Fields(), func(f arrow.Field, _ int) string { return f.Name })
}

func toArrow(cmd *cobra.Command, args []string) error {
	action, err := newAction(cmd)
	if err != nil {
		return err
	}
	defer action.Close()

	path := args[0]

	schema, err := schemafile.LoadIcebergFile(path)
	if err != nil {
		return errors.Wrap(err, "can't load iceberg schema")
	}

	out, err := convert.IcebergToArrowSchema(schema)
	if err != nil {
		return err
	}

	action.logger.Info("converted iceberg schema",
		zap.String("path", path),
		zap.Strings("fields", fieldNames(out)))

	ipcPath := action.getString("ipc")
	if ipcPath == "" {
		action.printf("%s\n", out)
		return nil
	}

	if err := schemafile.WriteArrowFile(out, ipcPath); err != nil {
		return errors.Wrap(err, "can't write arrow schema")
	}

	action.logger.Info("wrote arrow schema", zap.String("path", ipcPath))

	return nil
}

func fromArrow(cmd *cobra.Command, args []string) error {
	action, err := newAction(cmd)
	if err != nil {
		return err
	}
	defer action.Close()

	path := args[0]

	schema, err := schemafile.LoadArrowFile(path)
	if err != nil {
		return errors.Wrap(err, "can't load arrow schema")
	}

	format, err := schemafile.ParseFormat(action.cfg.Format)
	if err != nil {
		return err
	}

	opts := action.cfg.Options()
	logger := action.logger.With(zap.String("path", path))

	out, diags, err := convert.ArrowToIcebergSchemaWithDiagnostics(schema, opts...)
	logging.LogDiagnostics(logger, diags)
	if err != nil {
		return err
	}

	logger.Info("converted arrow schema",
		zap.Bool("strict", options.New(opts...).Strict()),
		zap.Int("lossy_steps", len(diags.WithCode(diagnostic.CodeLossyConversion))),
		zap.Strings("fields", lo.Map(out.Fields, func(f iceberg.SchemaField, _ int) string { return f.Name })))

	data, err := schemafile.MarshalIceberg(out, format)
	if err != nil {
		return errors.Wrap(err, "can't marshal iceberg schema")
	}

	action.printf("%s", data)

	return nil
}

func check(cmd *cobra.Command, args []string) error {
	action, err := newAction(cmd)
	if err != nil {
		return err
	}
	defer action.Close()

	path := args[0]

	schema, err := schemafile.LoadIcebergFile(path)
	if err != nil {
		return errors.Wrap(err, "can't load iceberg schema")
	}

	_, stable, err := convert.RoundTrip(schema)
	if err != nil {
		return err
	}

	if !stable {
		action.printf("unstable\n")
		return errors.Wrapf(ErrUnstable, "%s", path)
	}

	action.printf("stable\n")
	action.logger.Debug("round trip is stable",
		zap.String("path", path),
		zap.Int("highest_field_id", schema.HighestFieldID()))

	return nil
}

func kinds(cmd *cobra.Command, _ []string) error {
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)

	for kind := primitive.KindEnum(1); int(kind) < primitive.KindTotal; kind++ {
		typ := iceberg.PrimitiveOf(kind)

		switch kind {
		case primitive.KindDecimal:
			typ = iceberg.DecimalOf(38, 10)
		case primitive.KindFixed:
			typ = iceberg.FixedOf(16)
		}

		dt, err := convert.IcebergToArrowType(typ)
		if err != nil {
			return err
		}

		fmt.Fprintf(w, "%s\t%s\n", typ, dt)
	}

	return w.Flush()
}
