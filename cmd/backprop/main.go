// Package main provides the backprop command line tool.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/born-ml/backprop/matrix"
	"github.com/born-ml/backprop/nn"
	"github.com/born-ml/backprop/optim"
)

const version = "v0.1.0-dev"

var (
	xorInputs  = [][]float64{{0, 0}, {1, 0}, {0, 1}, {1, 1}}
	xorTargets = [][]float64{{0}, {1}, {1}, {0}}
)

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		log.Fatal(err)
	}
}

func run(args []string, out io.Writer) error {
	if len(args) == 0 {
		usage(out)
		return nil
	}

	switch args[0] {
	case "version":
		fmt.Fprintf(out, "backprop %s\n", version)
		return nil
	case "xor":
		return runXOR(args[1:], out)
	case "help", "-h", "--help":
		usage(out)
		return nil
	default:
		usage(out)
		return fmt.Errorf("unknown command %q", args[0])
	}
}

func usage(out io.Writer) {
	fmt.Fprintln(out, "backprop - feed-forward network trainer")
	fmt.Fprintf(out, "Version: %s\n\n", version)
	fmt.Fprintln(out, "Commands:")
	fmt.Fprintln(out, "  version    Show version")
	fmt.Fprintln(out, "  xor        Train a network on XOR and print its predictions")
	fmt.Fprintln(out, "")
	fmt.Fprintln(out, "Run 'backprop xor -h' for training flags.")
}

type xorConfig struct {
	hidden     int
	epochs     int
	lr         float64
	seed       uint64
	optimizer  string
	activation string
	quiet      bool
}

func parseXORFlags(args []string, out io.Writer) (xorConfig, error) {
	var cfg xorConfig

	fs := flag.NewFlagSet("xor", flag.ContinueOnError)
	fs.SetOutput(out)
	fs.IntVar(&cfg.hidden, "hidden", 3, "Neurons in the hidden layer")
	fs.IntVar(&cfg.epochs, "epochs", 10000, "Number of training epochs")
	fs.Float64Var(&cfg.lr, "lr", 0.5, "Learning rate")
	fs.Uint64Var(&cfg.seed, "seed", 0, "Initialization seed (0 = random)")
	fs.StringVar(&cfg.optimizer, "optimizer", "sgd", "Update rule: sgd or transposed")
	fs.StringVar(&cfg.activation, "activation", "sigmoid", "Activation: sigmoid, tanh, relu, leaky_relu or linear")
	fs.BoolVar(&cfg.quiet, "quiet", false, "Suppress progress output")

	if err := fs.Parse(args); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func runXOR(args []string, out io.Writer) error {
	cfg, err := parseXORFlags(args, out)
	if err != nil {
		return err
	}

	opt, err := optim.ByName(cfg.optimizer)
	if err != nil {
		return err
	}
	act, err := nn.ActivationByName(cfg.activation)
	if err != nil {
		return err
	}

	opts := []nn.Option{nn.WithOptimizer(opt)}
	if cfg.seed != 0 {
		opts = append(opts, nn.WithSource(matrix.NewSource(cfg.seed)))
	}
	if !cfg.quiet {
		opts = append(opts, nn.WithProgress(func(p nn.Progress) {
			fmt.Fprintf(out, "Epoch %5d/%d: Loss=%.6f\n", p.Epoch, p.Epochs, p.Loss)
		}))
	}

	layers := []int{2, cfg.hidden, 1}
	net, err := nn.New(layers, act, cfg.lr, opts...)
	if err != nil {
		return err
	}

	if !cfg.quiet {
		fmt.Fprintf(out, "Training %v network (%s, %s, lr=%g) for %d epochs\n",
			layers, act, opt.Name(), cfg.lr, cfg.epochs)
	}

	if err := net.Train(xorInputs, xorTargets, cfg.epochs); err != nil {
		return fmt.Errorf("training failed: %w", err)
	}

	for _, in := range xorInputs {
		pred, err := net.FeedForward(in)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "%v -> %.4f\n", in, pred[0])
	}

	return nil
}
