package main

import (
	"errors"
	"fmt"
	"io"
	"time"

	"git.gammaspectra.live/P2Pool/algebra/crypto"
	"git.gammaspectra.live/P2Pool/algebra/crypto/curve25519"
	"git.gammaspectra.live/P2Pool/algebra/utils"
	"github.com/urfave/cli"
)

const (
	engineConstantTime = "constant"
	engineVarTime      = "vartime"

	cacheTypeLRU = "lru"
	cacheTypeMap = "map"
)

var errInvalid = errors.New("invalid input")

// commands Engine independent view of engineCommands
type commands interface {
	Generate(n uint64, routines int) error
	Public(args []string) error
	ValidateScalar(args []string) error
	ValidatePoint(args []string) error
	AddPoints(args []string) error
	SortPoints(args []string) error
	HashToScalar(keccak bool, args []string) error
	Stats() (hits, misses uint64)
}

type engineCommands[E curve25519.Engine] struct {
	out   io.Writer
	mode  crypto.PrintMode
	cache *crypto.PublicKeyCache[E]
}

func newEngineCommands[E curve25519.Engine](out io.Writer, mode crypto.PrintMode, cacheType string, cacheSize int) (*engineCommands[E], error) {
	c := &engineCommands[E]{
		out:  out,
		mode: mode,
	}
	switch {
	case cacheSize <= 0:
		c.cache = crypto.NewPublicKeyNilCache[E]()
	case cacheType == cacheTypeLRU:
		c.cache = crypto.NewPublicKeyLRUCache[E](cacheSize)
	case cacheType == cacheTypeMap:
		c.cache = crypto.NewPublicKeyMapCache[E](cacheSize)
	default:
		return nil, fmt.Errorf("unknown cache type %q", cacheType)
	}
	return c, nil
}

func newCommands(out io.Writer, engine string, mode crypto.PrintMode, cacheType string, cacheSize int) (commands, error) {
	switch engine {
	case engineConstantTime:
		return newEngineCommands[curve25519.ConstantTimeEngine](out, mode, cacheType, cacheSize)
	case engineVarTime:
		return newEngineCommands[curve25519.VarTimeEngine](out, mode, cacheType, cacheSize)
	default:
		return nil, fmt.Errorf("unknown engine %q", engine)
	}
}

type pairOutput[E curve25519.Engine] struct {
	Secret string          `json:"secret"`
	Public crypto.Point[E] `json:"public"`
}

func (c *engineCommands[E]) Generate(n uint64, routines int) error {
	start := time.Now()
	pairs, err := crypto.GeneratePairs[E](n, routines)
	if err != nil {
		return err
	}
	elapsed := time.Since(start)
	utils.Logf("edkey", "generated %d pairs in %s, %spairs/s", len(pairs), elapsed, utils.SiUnits(float64(len(pairs))/elapsed.Seconds(), 2))

	out := make([]pairOutput[E], 0, len(pairs))
	for _, p := range pairs {
		out = append(out, pairOutput[E]{
			Secret: p.Secret().StringMode(c.mode),
			Public: p.Public(),
		})
	}
	buf, err := utils.MarshalJSONIndent(out, "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(c.out, string(buf))
	return err
}

func (c *engineCommands[E]) parseScalars(args []string) ([]crypto.Scalar[E], error) {
	scalars := make([]crypto.Scalar[E], 0, len(args))
	for i, arg := range args {
		s, err := crypto.ScalarFromString[E](arg)
		if err != nil {
			return nil, fmt.Errorf("argument %d: %w", i, err)
		}
		scalars = append(scalars, s)
	}
	return scalars, nil
}

func (c *engineCommands[E]) parsePoints(args []string) ([]crypto.Point[E], error) {
	points := make([]crypto.Point[E], 0, len(args))
	for i, arg := range args {
		p, err := crypto.PointFromString[E](arg)
		if err != nil {
			return nil, fmt.Errorf("argument %d: %w", i, err)
		}
		points = append(points, p)
	}
	return points, nil
}

// Public Prints the public point of every valid scalar
func (c *engineCommands[E]) Public(args []string) error {
	scalars, err := c.parseScalars(args)
	if err != nil {
		return err
	}
	for i, s := range scalars {
		if !s.IsValid() {
			return fmt.Errorf("argument %d: %w scalar", i, errInvalid)
		}
		if _, err = fmt.Fprintln(c.out, c.cache.ToPoint(s)); err != nil {
			return err
		}
	}
	return nil
}

func (c *engineCommands[E]) ValidateScalar(args []string) error {
	scalars, err := c.parseScalars(args)
	if err != nil {
		return err
	}
	var invalid int
	for _, s := range scalars {
		valid := s.IsValid()
		if !valid {
			invalid++
		}
		if _, err = fmt.Fprintf(c.out, "%s %t\n", s.StringMode(c.mode), valid); err != nil {
			return err
		}
	}
	if invalid > 0 {
		return fmt.Errorf("%d %w scalars", invalid, errInvalid)
	}
	return nil
}

func (c *engineCommands[E]) ValidatePoint(args []string) error {
	points, err := c.parsePoints(args)
	if err != nil {
		return err
	}
	var invalid int
	for _, p := range points {
		valid := c.cache.IsValid(p)
		if !valid {
			invalid++
		}
		if _, err = fmt.Fprintf(c.out, "%s %t\n", p.StringMode(c.mode), valid); err != nil {
			return err
		}
	}
	if invalid > 0 {
		return fmt.Errorf("%d %w points", invalid, errInvalid)
	}
	return nil
}

// AddPoints Prints the sum of all points, which must be valid
func (c *engineCommands[E]) AddPoints(args []string) error {
	points, err := c.parsePoints(args)
	if err != nil {
		return err
	}
	sum := crypto.ZeroPoint[E]()
	for i, p := range points {
		if !c.cache.IsValid(p) {
			return fmt.Errorf("argument %d: %w point", i, errInvalid)
		}
		sum.AddAssign(p)
	}
	_, err = fmt.Fprintln(c.out, sum.StringMode(c.mode))
	return err
}

func (c *engineCommands[E]) SortPoints(args []string) error {
	points, err := c.parsePoints(args)
	if err != nil {
		return err
	}
	crypto.SortPoints(points)
	for _, p := range points {
		if _, err = fmt.Fprintln(c.out, p.StringMode(c.mode)); err != nil {
			return err
		}
	}
	return nil
}

// HashToScalar Hashes the concatenation of all arguments
func (c *engineCommands[E]) HashToScalar(keccak bool, args []string) error {
	data := make([][]byte, 0, len(args))
	for _, arg := range args {
		data = append(data, []byte(arg))
	}

	var s crypto.Scalar[E]
	if keccak {
		s = crypto.KeccakToScalar[E](data...)
	} else {
		s = crypto.HashToScalar[E](data...)
	}
	_, err := fmt.Fprintln(c.out, s.StringMode(c.mode))
	return err
}

func (c *engineCommands[E]) Stats() (hits, misses uint64) {
	return c.cache.Stats()
}

// commandsFromContext Builds commands from the global flags
func commandsFromContext(ctx *cli.Context) (commands, error) {
	mode, err := crypto.ParsePrintMode(ctx.GlobalString(PrintModeFlag.Name))
	if err != nil {
		return nil, err
	}
	return newCommands(
		ctx.App.Writer,
		ctx.GlobalString(EngineFlag.Name),
		mode,
		ctx.GlobalString(CacheTypeFlag.Name),
		ctx.GlobalInt(CacheSizeFlag.Name),
	)
}

func withCommands(f func(ctx *cli.Context, c commands) error) func(ctx *cli.Context) error {
	return func(ctx *cli.Context) error {
		c, err := commandsFromContext(ctx)
		if err != nil {
			return err
		}
		defer func() {
			hits, misses := c.Stats()
			utils.Debugf("edkey", "public key cache: %d hits, %d misses", hits, misses)
		}()
		return f(ctx, c)
	}
}

func requireArgs(ctx *cli.Context, minimum int) ([]string, error) {
	args := []string(ctx.Args())
	if len(args) < minimum {
		return nil, fmt.Errorf("%s: expected at least %d arguments, got %d", ctx.Command.Name, minimum, len(args))
	}
	return args, nil
}

func generateAction(ctx *cli.Context, c commands) error {
	return c.Generate(ctx.Uint64(CountFlag.Name), ctx.Int(RoutinesFlag.Name))
}

func publicAction(ctx *cli.Context, c commands) error {
	args, err := requireArgs(ctx, 1)
	if err != nil {
		return err
	}
	return c.Public(args)
}

func validateScalarAction(ctx *cli.Context, c commands) error {
	args, err := requireArgs(ctx, 1)
	if err != nil {
		return err
	}
	return c.ValidateScalar(args)
}

func validatePointAction(ctx *cli.Context, c commands) error {
	args, err := requireArgs(ctx, 1)
	if err != nil {
		return err
	}
	return c.ValidatePoint(args)
}

func addPointsAction(ctx *cli.Context, c commands) error {
	args, err := requireArgs(ctx, 1)
	if err != nil {
		return err
	}
	return c.AddPoints(args)
}

func sortPointsAction(ctx *cli.Context, c commands) error {
	args, err := requireArgs(ctx, 1)
	if err != nil {
		return err
	}
	return c.SortPoints(args)
}

func hashToScalarAction(ctx *cli.Context, c commands) error {
	return c.HashToScalar(ctx.Bool(KeccakFlag.Name), []string(ctx.Args()))
}
