package main

import (
	"errors"
	"fmt"
	"io"
	"slices"

	"github.com/gogpu/glhal"
	"github.com/gogpu/glhal/glenum"
)

const vertexSource = `
@vertex
fn main(@location(0) position: vec4<f32>) -> @builtin(position) vec4<f32> {
    return position;
}
`

const fragmentSource = `
@fragment
fn main() -> @location(0) vec4<f32> {
    return vec4<f32>(1.0, 0.5, 0.25, 1.0);
}
`

const computeSource = `
@group(0) @binding(0) var<storage, read_write> data: array<u32>;

@compute @workgroup_size(4, 1, 1)
fn main(@builtin(global_invocation_id) id: vec3<u32>) {
    data[id.x] = id.x;
}
`

var errSelfTest = errors.New("self-test failed")

type check struct {
	name string
	run  func(*glhal.Context) error
}

var checks = []check{
	{"buffer round trip", checkBuffer},
	{"draw", checkDraw},
	{"clear", checkClear},
	{"compute", checkCompute},
	{"fence", checkFence},
}

// runSelfTest runs every check on ctx and reports each result.
func runSelfTest(w io.Writer, ctx *glhal.Context) error {
	failed := 0
	for _, c := range checks {
		err := c.run(ctx)
		if err == nil {
			err = drainErrors(ctx)
		}
		status := "ok"
		if err != nil {
			status = "FAIL: " + err.Error()
			failed++
		}
		fmt.Fprintf(w, "self-test %-20s %s\n", c.name, status)
	}
	s := ctx.Stats()
	fmt.Fprintf(w, "pipelines %d (hit rate %.2f), submissions %d, draws %d, dispatches %d\n",
		s.Pipelines, s.PipelineHitRate(), s.Submissions, s.Draws, s.Dispatches)
	if failed > 0 {
		return fmt.Errorf("%w: %d of %d checks", errSelfTest, failed, len(checks))
	}
	return nil
}

func drainErrors(ctx *glhal.Context) error {
	var errs []error
	for code := ctx.GetError(); code != glenum.NoError; code = ctx.GetError() {
		errs = append(errs, fmt.Errorf("error %s", code))
	}
	return errors.Join(errs...)
}

func checkBuffer(ctx *glhal.Context) error {
	buf := ctx.GenBuffers(1)[0]
	defer ctx.DeleteBuffers([]uint32{buf})
	ctx.BindBuffer(glenum.CopyWriteBuffer, buf)
	want := []byte("glhal self-test!")
	ctx.BufferData(glenum.CopyWriteBuffer, int64(len(want)), want, glenum.StaticRead)
	got := make([]byte, len(want))
	ctx.GetBufferSubData(glenum.CopyWriteBuffer, 0, got)
	if !slices.Equal(got, want) {
		return fmt.Errorf("read back %q", got)
	}
	return nil
}

func link(ctx *glhal.Context, sources map[glenum.ShaderType]string) (uint32, error) {
	prog := ctx.CreateProgram()
	for kind, src := range sources {
		sh := ctx.CreateShader(kind)
		ctx.ShaderSource(sh, src)
		ctx.CompileShader(sh)
		if ctx.GetShaderiv(sh, glenum.CompileStatus) == 0 {
			return 0, fmt.Errorf("compile %s: %s", kind, ctx.GetShaderInfoLog(sh))
		}
		ctx.AttachShader(prog, sh)
		ctx.DeleteShader(sh)
	}
	ctx.LinkProgram(prog)
	status := make([]int32, 1)
	ctx.GetProgramiv(prog, glenum.LinkStatus, status)
	if status[0] == 0 {
		return 0, fmt.Errorf("link: %s", ctx.GetProgramInfoLog(prog))
	}
	return prog, nil
}

func checkDraw(ctx *glhal.Context) error {
	prog, err := link(ctx, map[glenum.ShaderType]string{
		glenum.VertexShader:   vertexSource,
		glenum.FragmentShader: fragmentSource,
	})
	if err != nil {
		return err
	}
	defer ctx.DeleteProgram(prog)
	ctx.UseProgram(prog)
	defer ctx.UseProgram(0)

	vao := ctx.GenVertexArrays(1)[0]
	defer ctx.DeleteVertexArrays([]uint32{vao})
	ctx.BindVertexArray(vao)
	vbo := ctx.GenBuffers(1)[0]
	defer ctx.DeleteBuffers([]uint32{vbo})
	ctx.BindBuffer(glenum.ArrayBuffer, vbo)
	ctx.BufferData(glenum.ArrayBuffer, 3*16, make([]byte, 3*16), glenum.StaticDraw)
	ctx.VertexAttribPointer(0, 4, glenum.AttribFloat, false, 0, 0)
	ctx.EnableVertexAttribArray(0)

	before := ctx.Stats().Draws
	for range 3 {
		ctx.DrawArrays(glenum.Triangles, 0, 3)
	}
	ctx.Finish()
	if n := ctx.Stats().Draws - before; n != 3 {
		return fmt.Errorf("recorded %d draws, want 3", n)
	}
	return nil
}

func checkClear(ctx *glhal.Context) error {
	ctx.ClearColor(0, 0, 0, 1)
	ctx.Clear(glenum.ColorBufferBit | glenum.DepthBufferBit | glenum.StencilBufferBit)
	ctx.ColorMask(true, false, true, true)
	ctx.Clear(glenum.ColorBufferBit)
	ctx.ColorMask(true, true, true, true)
	ctx.Finish()
	return nil
}

func checkCompute(ctx *glhal.Context) error {
	prog, err := link(ctx, map[glenum.ShaderType]string{glenum.ComputeShader: computeSource})
	if err != nil {
		return err
	}
	defer ctx.DeleteProgram(prog)
	ssbo := ctx.GenBuffers(1)[0]
	defer ctx.DeleteBuffers([]uint32{ssbo})
	ctx.BindBufferBase(glenum.ShaderStorageBuffer, 0, ssbo)
	ctx.BufferData(glenum.ShaderStorageBuffer, 64, nil, glenum.DynamicCopy)

	ctx.UseProgram(prog)
	defer ctx.UseProgram(0)
	before := ctx.Stats().Dispatches
	ctx.DispatchCompute(4, 1, 1)
	ctx.MemoryBarrier(glenum.AllBarrierBits)
	ctx.Finish()
	if n := ctx.Stats().Dispatches - before; n != 1 {
		return fmt.Errorf("recorded %d dispatches, want 1", n)
	}
	return nil
}

func checkFence(ctx *glhal.Context) error {
	fence := ctx.FenceSync(glenum.SyncGPUCommandsComplete, 0)
	defer ctx.DeleteSync(fence)
	switch status := ctx.ClientWaitSync(fence, glenum.SyncFlushCommands, 1e9); status {
	case glenum.AlreadySignaled, glenum.ConditionSatisfied:
		return nil
	default:
		return fmt.Errorf("ClientWaitSync = %s", status)
	}
}
