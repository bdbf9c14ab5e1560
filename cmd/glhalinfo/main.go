// Command glhalinfo creates a glhal context on the noop backend and prints
// its strings, limits and the result of a short self-test.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"

	"github.com/gogpu/glhal"
	"github.com/gogpu/glhal/glenum"
)

func main() {
	log.SetFlags(0)
	if err := run(os.Args[1:], os.Stdout); err != nil {
		log.Fatalf("glhalinfo: %v", err)
	}
}

func run(args []string, w io.Writer) error {
	fs := flag.NewFlagSet("glhalinfo", flag.ContinueOnError)
	fs.SetOutput(w)
	var (
		config   = fs.String("config", os.Getenv(glhal.ConfigEnv), "TOML configuration file")
		selfTest = fs.Bool("selftest", true, "run the self-test")
		dump     = fs.Bool("dump-config", false, "print the effective configuration and exit")
		verbose  = fs.Bool("v", false, "log at debug level to stderr")
	)
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg := glhal.DefaultConfig()
	if *config != "" {
		var err error
		if cfg, err = glhal.LoadConfig(*config); err != nil {
			return err
		}
	}
	if *dump {
		data, err := cfg.Encode()
		if err != nil {
			return err
		}
		_, err = w.Write(data)
		return err
	}
	if *verbose {
		glhal.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	} else if level, ok, _ := cfg.Level(); ok {
		glhal.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
	}

	ctx, err := glhal.NewNoopContext(glhal.WithConfig(cfg))
	if err != nil {
		return err
	}
	defer ctx.Close()

	printStrings(w, ctx)
	printLimits(w, ctx)
	if !*selfTest {
		return nil
	}
	return runSelfTest(w, ctx)
}

func printStrings(w io.Writer, ctx *glhal.Context) {
	for _, name := range []glenum.StringName{glenum.Vendor, glenum.Renderer, glenum.Version, glenum.ShadingLanguageVersion} {
		fmt.Fprintf(w, "%-26s %s\n", name.String()+":", ctx.GetString(name))
	}
	var n [1]int32
	ctx.GetIntegerv(glenum.NumExtensions, n[:])
	fmt.Fprintf(w, "%-26s %d\n", "NUM_EXTENSIONS:", n[0])
	for i := range uint32(n[0]) {
		fmt.Fprintf(w, "    %s\n", ctx.GetStringi(glenum.Extensions, i))
	}
}

var limits = []glenum.GetPName{
	glenum.MaxTextureSize,
	glenum.MaxCubeMapTextureSize,
	glenum.MaxArrayTextureLayers,
	glenum.MaxRenderbufferSize,
	glenum.MaxViewportDims,
	glenum.MaxDrawBuffers,
	glenum.MaxColorAttachmentsParam,
	glenum.MaxSamples,
	glenum.MaxVertexAttribs,
	glenum.MaxVertexAttribBindings,
	glenum.MaxTextureImageUnits,
	glenum.MaxCombinedTextureImageUnits,
	glenum.MaxUniformBufferBindings,
	glenum.MaxUniformBlockSize,
	glenum.MaxShaderStorageBufferBindings,
	glenum.MaxShaderStorageBlockSize,
	glenum.MaxTransformFeedbackBuffers,
	glenum.MaxComputeWorkGroupInvocations,
	glenum.MaxDebugMessageLength,
	glenum.MaxDebugGroupStackDepth,
	glenum.MaxLabelLength,
}

func printLimits(w io.Writer, ctx *glhal.Context) {
	var v [4]int64
	for _, p := range limits {
		n := ctx.GetInteger64v(p, v[:])
		fmt.Fprintf(w, "%-34s", p.String()+":")
		for _, x := range v[:n] {
			fmt.Fprintf(w, " %d", x)
		}
		fmt.Fprintln(w)
	}
	for code := ctx.GetError(); code != glenum.NoError; code = ctx.GetError() {
		glhal.Logger().Warn("limit query failed", "error", code)
	}
}
