package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"time"

	"github.com/chzyer/readline"
	flag "github.com/spf13/pflag"
	"golang.org/x/sys/unix"

	"awesome-dragon.science/go/chattext/internal/config"
	"awesome-dragon.science/go/chattext/internal/console"
	"awesome-dragon.science/go/chattext/internal/provider"
	"awesome-dragon.science/go/chattext/internal/registry"
	"awesome-dragon.science/go/chattext/pkg/log"
	"awesome-dragon.science/go/chattext/pkg/placeholder"
)

var (
	configPath  = flag.StringP("config", "c", "config.toml", "sets the config file to use")
	mode        = flag.StringP("mode", "m", "colourise", "sets the conversion to run on input")
	as          = flag.String("as", "", "sets the configured player to resolve placeholders for")
	interactive = flag.BoolP("interactive", "i", false, "starts an interactive console")
	noProvider  = flag.Bool("no-provider", false, "does not install the placeholder provider at all")
)

func main() {
	flag.Parse()

	var (
		rl  *readline.Instance
		out io.Writer = os.Stdout
		err error
	)

	logOut := io.Writer(os.Stderr)

	if *interactive {
		if rl, err = readline.New("> "); err != nil {
			fmt.Fprintf(os.Stderr, "could not start console: %s\n", err)
			os.Exit(1)
		}

		out, logOut = rl, rl
	}

	l := log.New(log.FTimestamp, logOut, "MAIN", log.INFO)

	conf, err := config.GetConfig(*configPath)
	if err != nil {
		l.Critf("could not read config file: %s", err)
	}

	l.SetMinLevel(conf.Level())

	c := setup(conf, out, l)

	if *as != "" {
		if err := c.SelectPlayer(*as); err != nil {
			l.Critf("could not select player: %s", err)
		}
	}

	if *interactive {
		runCLI(c, rl, l)
		return
	}

	if err := runOnce(c, *mode, flag.Args(), os.Stdin, out); err != nil {
		l.Critf("%s", err)
	}
}

func setup(conf *config.Config, out io.Writer, l *log.Logger) *console.Console {
	reg := registry.New(l.Clone().SetPrefix("REGISTRY"))

	if !*noProvider {
		var stats provider.StatsSource
		if conf.Provider.HostStats {
			stats = provider.HostStats{Started: time.Now()}
		}

		p := provider.New(conf.Provider.Static, stats, l.Clone().SetPrefix("PROVIDER"))
		if _, err := reg.Register(conf.Provider.Name, p); err != nil {
			l.Critf("could not register placeholder provider: %s", err)
		}

		if conf.Provider.Enabled {
			_ = reg.Enable(conf.Provider.Name)
		}
	}

	d := placeholder.NewDispatcher(reg.Provider(conf.Provider.Name))

	return console.New(reg, d, conf.Provider.Name, conf.Players(), out, l.Clone().SetPrefix("CONSOLE"))
}

// runOnce converts the given args as a single line, or every line on in if there are no args
func runOnce(c *console.Console, mode string, args []string, in io.Reader, out io.Writer) error {
	convert := func(line string) error {
		res, err := c.Convert(mode, line)
		if err != nil {
			return err
		}

		_, err = fmt.Fprintln(out, res)

		return err
	}

	if len(args) > 0 {
		return convert(strings.Join(args, " "))
	}

	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		if err := convert(scanner.Text()); err != nil {
			return err
		}
	}

	return scanner.Err()
}

func runCLI(c *console.Console, rl *readline.Instance, l *log.Logger) {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, unix.SIGINT, unix.SIGTERM)

	go func() {
		sig := <-sigChan
		l.Infof("Caught Signal: %s", sig)
		_ = rl.Close()
	}()

	defer func() { _ = rl.Close() }()

	l.Info("type help for a list of commands")

	for {
		line, err := rl.Readline()
		if err != nil {
			return
		}

		if err := c.Commands.ParseLine(line); err != nil {
			l.Warn(err)
		}
	}
}
