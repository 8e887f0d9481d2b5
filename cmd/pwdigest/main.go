// Command pwdigest computes or verifies a password digest with one of the
// hashing algorithms.  The password is read from the first line of stdin.
package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"math"
	"os"
	"strings"

	"go.uber.org/zap"

	"github.com/hasbyte1/go-pwdigest/hashing"
	"github.com/hasbyte1/go-pwdigest/internal/config"
)

const (
	exitMatch    = 0
	exitMismatch = 1
	exitError    = 2
)

// options are the command-line flags.  Cost flags override the config file
// only when set explicitly.
type options struct {
	configPath  string
	alg         string
	salt        string
	iterations  uint
	timeCost    uint
	memoryCost  uint
	parallelism uint
	version     uint
	hashLength  uint
	verify      string
	list        bool
	debug       bool
}

func parseFlags(args []string) (*options, *flag.FlagSet, error) {
	o := &options{}
	fs := flag.NewFlagSet("pwdigest", flag.ContinueOnError)
	fs.StringVar(&o.configPath, "config", "", "YAML config file")
	fs.StringVar(&o.alg, "alg", "", "algorithm (overrides config)")
	fs.StringVar(&o.salt, "salt", "", "salt (base64 for argon2i)")
	fs.UintVar(&o.iterations, "iterations", 0, "PBKDF2 iterations")
	fs.UintVar(&o.timeCost, "time", 0, "Argon2 time cost")
	fs.UintVar(&o.memoryCost, "memory", 0, "Argon2 memory cost in KiB")
	fs.UintVar(&o.parallelism, "parallelism", 0, "Argon2 parallelism")
	fs.UintVar(&o.version, "version", 0, "Argon2 version")
	fs.UintVar(&o.hashLength, "hash-length", 0, "Argon2 output length in bytes")
	fs.StringVar(&o.verify, "verify", "", "stored digest to verify against")
	fs.BoolVar(&o.list, "list", false, "list enabled algorithms and exit")
	fs.BoolVar(&o.debug, "debug", false, "development logging")
	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}
	return o, fs, nil
}

// apply overlays explicitly set flags on f.  Cost flags above MaxUint32 are
// rejected instead of wrapping.
func (o *options) apply(fs *flag.FlagSet, f *config.File) error {
	var err error
	set := func(dst *uint32, name string, v uint) {
		if err != nil {
			return
		}
		if v > math.MaxUint32 {
			err = fmt.Errorf("-%s: %d exceeds %d", name, v, uint64(math.MaxUint32))
			return
		}
		*dst = uint32(v)
	}
	fs.Visit(func(fl *flag.Flag) {
		switch fl.Name {
		case "alg":
			f.Algorithm = o.alg
		case "iterations":
			set(&f.Iterations, fl.Name, o.iterations)
		case "time":
			set(&f.Argon2.TimeCost, fl.Name, o.timeCost)
		case "memory":
			set(&f.Argon2.MemoryCost, fl.Name, o.memoryCost)
		case "parallelism":
			set(&f.Argon2.Parallelism, fl.Name, o.parallelism)
		case "version":
			set(&f.Argon2.Version, fl.Name, o.version)
		case "hash-length":
			set(&f.Argon2.HashLength, fl.Name, o.hashLength)
		}
	})
	return err
}

func newLogger(debug bool) (*zap.Logger, error) {
	if debug {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout))
}

func run(args []string, stdin io.Reader, stdout io.Writer) int {
	o, fs, err := parseFlags(args)
	if err != nil {
		return exitError
	}

	logger, err := newLogger(o.debug)
	if err != nil {
		fmt.Fprintf(os.Stderr, "pwdigest: logger: %v\n", err)
		return exitError
	}
	defer func() { _ = logger.Sync() }()

	code, err := execute(o, fs, logger, stdin, stdout)
	if err != nil {
		logger.Error("pwdigest failed", zap.Error(err))
	}
	return code
}

func execute(o *options, fs *flag.FlagSet, logger *zap.Logger, stdin io.Reader, stdout io.Writer) (int, error) {
	file := config.Default()
	if o.configPath != "" {
		var err error
		if file, err = config.Load(o.configPath); err != nil {
			return exitError, err
		}
	}
	if err := o.apply(fs, file); err != nil {
		return exitError, err
	}
	if err := file.Validate(); err != nil {
		return exitError, err
	}

	cfg, err := file.HashingConfig()
	if err != nil {
		return exitError, err
	}
	cfg.Logger = logger
	reg, err := hashing.NewRegistry(cfg)
	if err != nil {
		return exitError, err
	}

	if o.list {
		for _, name := range reg.Names() {
			fmt.Fprintln(stdout, name)
		}
		return exitMatch, nil
	}

	password, err := readPassword(stdin)
	if err != nil {
		return exitError, err
	}

	name := hashing.AlgorithmName(file.Algorithm)
	if o.verify != "" {
		ok, err := reg.Verify(name, password, o.salt, file.Params(), o.verify)
		if err != nil {
			return exitError, err
		}
		if !ok {
			fmt.Fprintln(stdout, "mismatch")
			return exitMismatch, nil
		}
		fmt.Fprintln(stdout, "match")
		return exitMatch, nil
	}

	digest, err := reg.Hash(name, password, o.salt, file.Params())
	if err != nil {
		return exitError, err
	}
	fmt.Fprintln(stdout, digest)
	return exitMatch, nil
}

// readPassword returns the first line of r without its line terminator.
func readPassword(r io.Reader) (string, error) {
	line, err := bufio.NewReader(r).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("read password: %w", err)
	}
	return strings.TrimRight(line, "\r\n"), nil
}
