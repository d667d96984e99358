package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mblarsen/balloon/internal/notifier"
	"github.com/mblarsen/balloon/internal/notifu"
	"github.com/mblarsen/balloon/internal/request"
	"github.com/spf13/cobra"
)

type notifyOptions struct {
	message string
	title   string
	sound   bool
	quiet   bool
	typ     string
	time    string
	icon    string
	set     []string
	file    string
	format  string
	dryRun  bool
}

func newNotifyCmd(g *globals) *cobra.Command {
	o := &notifyOptions{}

	notifyCmd := &cobra.Command{
		Use:   "notify [message]",
		Short: "Show a notification.",
		Long: `Show a notification.

The request is built from --file (if given) and then from the flags that were
set on the command line. Options notifu does not understand are ignored.`,
		Example: `  balloon notify "Build finished"
  balloon notify -m "Deploy failed" --title CI --type error --sound
  balloon notify -m "Done" --set w=true --time 5000
  echo '{"message": "from stdin"}' | balloon notify -f -`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runNotify(cmd, g, o, args)
		},
	}

	f := notifyCmd.Flags()
	f.StringVarP(&o.message, "message", "m", "", "Notification text.")
	f.StringVar(&o.title, "title", "", "Notification title.")
	f.BoolVar(&o.sound, "sound", false, "Play a sound.")
	f.BoolVar(&o.quiet, "quiet", true, "Do not play a sound.")
	f.StringVar(&o.typ, "type", "", "Notification type: info, warn or error.")
	f.StringVar(&o.time, "time", "", "Display duration in milliseconds.")
	f.StringVar(&o.icon, "icon", "", "Icon path or name.")
	f.StringArrayVar(&o.set, "set", nil, "Set a request field, as key=value. Repeatable.")
	f.StringVarP(&o.file, "file", "f", "", "Read the request from a JSON, YAML or TOML file ('-' for stdin).")
	f.StringVar(&o.format, "format", "", "Format of --file: json, yaml or toml (default: detect).")
	f.BoolVar(&o.dryRun, "dry-run", false, "Print the notifu command line instead of running it.")
	return notifyCmd
}

func runNotify(cmd *cobra.Command, g *globals, o *notifyOptions, args []string) error {
	req, err := o.request(cmd, args)
	if err != nil {
		return err
	}

	backend, err := notifier.Select(g.cfg, hostFacts, runner)
	if err != nil {
		return err
	}

	if o.dryRun {
		nb, ok := backend.(*notifu.Backend)
		if !ok {
			return fmt.Errorf("--dry-run is only supported by the notifu backend")
		}
		v, err := request.Validate(req.WithDefaults(g.cfg.Defaults))
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), nb.CommandLine(v))
		return nil
	}

	if err := notifier.New(backend, g.cfg.Defaults).Send(req); err != nil {
		return explainError(err, g.configPath)
	}
	return nil
}

// request builds the notification request. Only flags the user set are
// included, so they override values from --file.
func (o *notifyOptions) request(cmd *cobra.Command, args []string) (request.Request, error) {
	req := request.Request{}
	if o.file != "" {
		fileReq, err := o.readFile(cmd.InOrStdin())
		if err != nil {
			return nil, err
		}
		req = fileReq
	}

	for _, kv := range o.set {
		key, value, err := parseSet(kv)
		if err != nil {
			return nil, err
		}
		req[key] = value
	}

	flags := cmd.Flags()
	if len(args) == 1 {
		req["message"] = args[0]
	}
	if flags.Changed("message") {
		req["message"] = o.message
	}
	if flags.Changed("title") {
		req["title"] = o.title
	}
	if flags.Changed("sound") {
		req["sound"] = o.sound
	}
	if flags.Changed("quiet") {
		req["quiet"] = o.quiet
	}
	if flags.Changed("type") {
		req["type"] = o.typ
	}
	if flags.Changed("time") {
		req["time"] = o.time
	}
	if flags.Changed("icon") {
		req["icon"] = o.icon
	}
	return req, nil
}

func (o *notifyOptions) readFile(stdin io.Reader) (request.Request, error) {
	var data []byte
	var err error
	format := o.format
	if o.file == "-" {
		data, err = io.ReadAll(stdin)
	} else {
		data, err = os.ReadFile(o.file)
		if format == "" {
			format = request.FormatFromPath(o.file)
		}
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read request: %w", err)
	}

	req, err := request.Decode(data, format)
	if err != nil {
		return nil, fmt.Errorf("failed to parse request %s: %w", o.file, err)
	}
	return req, nil
}

// parseSet splits a --set value. A bare key means true, and the values true
// and false become booleans.
func parseSet(kv string) (string, any, error) {
	key, value, found := strings.Cut(kv, "=")
	key = strings.TrimSpace(key)
	if key == "" {
		return "", nil, fmt.Errorf("invalid --set %q: missing key", kv)
	}
	if !found {
		return key, true, nil
	}
	switch value {
	case "true":
		return key, true, nil
	case "false":
		return key, false, nil
	default:
		return key, value, nil
	}
}
