package shader

import (
	"fmt"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/naga/ir"
)

// ScalarKind is the component kind of an input or uniform.
type ScalarKind uint8

// Scalar kinds.
const (
	KindFloat ScalarKind = iota
	KindSint
	KindUint
	KindBool
)

func kindOf(k ir.ScalarKind) ScalarKind {
	switch k {
	case ir.ScalarSint, ir.ScalarAbstractInt:
		return KindSint
	case ir.ScalarUint:
		return KindUint
	case ir.ScalarBool:
		return KindBool
	}
	return KindFloat
}

// Input is a vertex stage input.
type Input struct {
	Name       string
	Location   uint32
	Kind       ScalarKind
	Components int
}

// ResourceKind tells what a bound global is.
type ResourceKind uint8

// Resource kinds.
const (
	UniformBlock ResourceKind = iota
	StorageBlock
	Texture
	Sampler
	Image
)

// Resource is a global bound through a bind group.
type Resource struct {
	Name    string
	Group   uint32
	Binding uint32
	Kind    ResourceKind

	// Blocks.
	Size     uint32
	ReadOnly bool

	// Textures.
	ViewDimension gputypes.TextureViewDimension
	SampleType    gputypes.TextureSampleType
	Multisampled  bool

	// Samplers.
	Comparison bool

	// Images. ViewDimension applies too.
	Format gputypes.TextureFormat
	Access gputypes.StorageTextureAccess
}

// Uniform is one member of the default uniform block.
type Uniform struct {
	Name     string
	Offset   uint32
	Kind     ScalarKind
	Columns  int // 1 for scalars and vectors
	Rows     int // vector width
	ArrayLen int // 1 for non-arrays
	Stride   uint32
}

// Components returns the number of scalar values in one element.
func (u *Uniform) Components() int { return u.Columns * u.Rows }

// ColumnStride returns the byte distance between matrix columns.
func (u *Uniform) ColumnStride() uint32 {
	if u.Rows == 2 {
		return 8
	}
	return 16
}

// Block is the default uniform block of a stage.
type Block struct {
	Name     string
	Size     uint32
	Uniforms []Uniform
}

// Lookup returns the index of the named uniform. Array elements may be
// addressed as name[i], returning the element index.
func (b *Block) Lookup(name string) (index, element int, ok bool) {
	base, elem := splitIndex(name)
	for i := range b.Uniforms {
		u := &b.Uniforms[i]
		if u.Name != base {
			continue
		}
		if elem >= u.ArrayLen {
			return 0, 0, false
		}
		return i, elem, true
	}
	return 0, 0, false
}

func splitIndex(name string) (string, int) {
	n := len(name)
	if n < 3 || name[n-1] != ']' {
		return name, 0
	}
	for i := n - 2; i > 0; i-- {
		if name[i] == '[' {
			v := 0
			for _, c := range name[i+1 : n-1] {
				if c < '0' || c > '9' {
					return name, 0
				}
				v = v*10 + int(c-'0')
			}
			return name[:i], v
		}
	}
	return name, 0
}

func reflectModule(mod *ir.Module, ep *ir.EntryPoint, out *Module) error {
	for _, g := range mod.GlobalVariables {
		if g.Binding == nil {
			continue
		}
		if err := reflectGlobal(mod, &g, out); err != nil {
			return err
		}
	}

	switch out.Stage {
	case StageVertex:
		for _, arg := range ep.Function.Arguments {
			collectInputs(mod, arg.Name, arg.Type, arg.Binding, out)
		}
	case StageFragment:
		if r := ep.Function.Result; r != nil {
			collectOutputs(mod, r.Type, r.Binding, out)
		}
	}
	return nil
}

func reflectGlobal(mod *ir.Module, g *ir.GlobalVariable, out *Module) error {
	b := g.Binding
	inner := mod.Types[g.Type].Inner

	switch g.Space {
	case ir.SpaceUniform:
		if b.Group == GroupDefault {
			if b.Binding != 0 {
				return fmt.Errorf("%w: %s at @group(2) @binding(%d)", ErrUnsupportedGroup, g.Name, b.Binding)
			}
			blk, err := defaultBlock(mod, g.Name, inner)
			if err != nil {
				return err
			}
			out.DefaultBlock = blk
			return nil
		}
		if b.Group != GroupBlocks {
			return fmt.Errorf("%w: uniform block %s in group %d", ErrUnsupportedGroup, g.Name, b.Group)
		}
		out.Resources = append(out.Resources, Resource{
			Name: g.Name, Group: b.Group, Binding: b.Binding, Kind: UniformBlock,
			Size: ir.TypeSize(mod, g.Type), ReadOnly: true,
		})
	case ir.SpaceStorage:
		if b.Group != GroupBlocks {
			return fmt.Errorf("%w: storage block %s in group %d", ErrUnsupportedGroup, g.Name, b.Group)
		}
		out.Resources = append(out.Resources, Resource{
			Name: g.Name, Group: b.Group, Binding: b.Binding, Kind: StorageBlock,
			Size: ir.TypeSize(mod, g.Type), ReadOnly: g.Access == ir.StorageRead,
		})
	case ir.SpaceHandle:
		if t, ok := inner.(ir.ImageType); ok && t.Class == ir.ImageClassStorage {
			if b.Group != GroupImages {
				return fmt.Errorf("%w: storage texture %s in group %d", ErrUnsupportedGroup, g.Name, b.Group)
			}
			return reflectImage(g, t, out)
		}
		if b.Group != GroupTextures {
			return fmt.Errorf("%w: %s in group %d", ErrUnsupportedGroup, g.Name, b.Group)
		}
		switch t := inner.(type) {
		case ir.ImageType:
			out.Resources = append(out.Resources, Resource{
				Name: g.Name, Group: b.Group, Binding: b.Binding, Kind: Texture,
				ViewDimension: viewDimension(t),
				SampleType:    sampleType(t),
				Multisampled:  t.Multisampled,
			})
		case ir.SamplerType:
			out.Resources = append(out.Resources, Resource{
				Name: g.Name, Group: b.Group, Binding: b.Binding, Kind: Sampler,
				Comparison: t.Comparison,
			})
		}
	}
	return nil
}

// storageFormats maps the WGSL texel formats a storage texture may
// declare onto backend formats.
var storageFormats = map[ir.StorageFormat]gputypes.TextureFormat{
	ir.StorageFormatR8Unorm:       gputypes.TextureFormatR8Unorm,
	ir.StorageFormatR8Snorm:       gputypes.TextureFormatR8Snorm,
	ir.StorageFormatR8Uint:        gputypes.TextureFormatR8Uint,
	ir.StorageFormatR8Sint:        gputypes.TextureFormatR8Sint,
	ir.StorageFormatR16Uint:       gputypes.TextureFormatR16Uint,
	ir.StorageFormatR16Sint:       gputypes.TextureFormatR16Sint,
	ir.StorageFormatR16Float:      gputypes.TextureFormatR16Float,
	ir.StorageFormatRg8Unorm:      gputypes.TextureFormatRG8Unorm,
	ir.StorageFormatRg8Snorm:      gputypes.TextureFormatRG8Snorm,
	ir.StorageFormatRg8Uint:       gputypes.TextureFormatRG8Uint,
	ir.StorageFormatRg8Sint:       gputypes.TextureFormatRG8Sint,
	ir.StorageFormatR32Uint:       gputypes.TextureFormatR32Uint,
	ir.StorageFormatR32Sint:       gputypes.TextureFormatR32Sint,
	ir.StorageFormatR32Float:      gputypes.TextureFormatR32Float,
	ir.StorageFormatRg16Uint:      gputypes.TextureFormatRG16Uint,
	ir.StorageFormatRg16Sint:      gputypes.TextureFormatRG16Sint,
	ir.StorageFormatRg16Float:     gputypes.TextureFormatRG16Float,
	ir.StorageFormatRgba8Unorm:    gputypes.TextureFormatRGBA8Unorm,
	ir.StorageFormatRgba8Snorm:    gputypes.TextureFormatRGBA8Snorm,
	ir.StorageFormatRgba8Uint:     gputypes.TextureFormatRGBA8Uint,
	ir.StorageFormatRgba8Sint:     gputypes.TextureFormatRGBA8Sint,
	ir.StorageFormatBgra8Unorm:    gputypes.TextureFormatBGRA8Unorm,
	ir.StorageFormatRgb10a2Uint:   gputypes.TextureFormatRGB10A2Uint,
	ir.StorageFormatRgb10a2Unorm:  gputypes.TextureFormatRGB10A2Unorm,
	ir.StorageFormatRg11b10Ufloat: gputypes.TextureFormatRG11B10Ufloat,
	ir.StorageFormatRg32Uint:      gputypes.TextureFormatRG32Uint,
	ir.StorageFormatRg32Sint:      gputypes.TextureFormatRG32Sint,
	ir.StorageFormatRg32Float:     gputypes.TextureFormatRG32Float,
	ir.StorageFormatRgba16Uint:    gputypes.TextureFormatRGBA16Uint,
	ir.StorageFormatRgba16Sint:    gputypes.TextureFormatRGBA16Sint,
	ir.StorageFormatRgba16Float:   gputypes.TextureFormatRGBA16Float,
	ir.StorageFormatRgba32Uint:    gputypes.TextureFormatRGBA32Uint,
	ir.StorageFormatRgba32Sint:    gputypes.TextureFormatRGBA32Sint,
	ir.StorageFormatRgba32Float:   gputypes.TextureFormatRGBA32Float,
	ir.StorageFormatR16Unorm:      gputypes.TextureFormatR16Unorm,
	ir.StorageFormatR16Snorm:      gputypes.TextureFormatR16Snorm,
	ir.StorageFormatRg16Unorm:     gputypes.TextureFormatRG16Unorm,
	ir.StorageFormatRg16Snorm:     gputypes.TextureFormatRG16Snorm,
	ir.StorageFormatRgba16Unorm:   gputypes.TextureFormatRGBA16Unorm,
	ir.StorageFormatRgba16Snorm:   gputypes.TextureFormatRGBA16Snorm,
}

func reflectImage(g *ir.GlobalVariable, t ir.ImageType, out *Module) error {
	format, ok := storageFormats[t.StorageFormat]
	if !ok || t.Multisampled || t.Dim == ir.DimCube {
		return fmt.Errorf("%w: %s", ErrStorageTexture, g.Name)
	}
	access := gputypes.StorageTextureAccessReadWrite
	switch t.StorageAccess {
	case ir.StorageAccessRead:
		access = gputypes.StorageTextureAccessReadOnly
	case ir.StorageAccessWrite:
		access = gputypes.StorageTextureAccessWriteOnly
	case ir.StorageAccessAtomic:
		return fmt.Errorf("%w: atomic access to %s", ErrStorageTexture, g.Name)
	}
	out.Resources = append(out.Resources, Resource{
		Name: g.Name, Group: g.Binding.Group, Binding: g.Binding.Binding, Kind: Image,
		ViewDimension: viewDimension(t), Format: format, Access: access,
	})
	return nil
}

func viewDimension(t ir.ImageType) gputypes.TextureViewDimension {
	switch t.Dim {
	case ir.Dim1D:
		return gputypes.TextureViewDimension1D
	case ir.Dim3D:
		return gputypes.TextureViewDimension3D
	case ir.DimCube:
		if t.Arrayed {
			return gputypes.TextureViewDimensionCubeArray
		}
		return gputypes.TextureViewDimensionCube
	}
	if t.Arrayed {
		return gputypes.TextureViewDimension2DArray
	}
	return gputypes.TextureViewDimension2D
}

func sampleType(t ir.ImageType) gputypes.TextureSampleType {
	if t.Class == ir.ImageClassDepth {
		return gputypes.TextureSampleTypeDepth
	}
	switch kindOf(t.SampledKind) {
	case KindSint:
		return gputypes.TextureSampleTypeSint
	case KindUint:
		return gputypes.TextureSampleTypeUint
	}
	return gputypes.TextureSampleTypeFloat
}

func defaultBlock(mod *ir.Module, name string, inner ir.TypeInner) (*Block, error) {
	st, ok := inner.(ir.StructType)
	if !ok {
		return nil, fmt.Errorf("shader: default uniform block %s is not a struct", name)
	}
	blk := &Block{Name: name, Size: st.Span}
	for _, m := range st.Members {
		u := Uniform{Name: m.Name, Offset: m.Offset, Columns: 1, Rows: 1, ArrayLen: 1}
		elem := mod.Types[m.Type].Inner
		if arr, ok := elem.(ir.ArrayType); ok {
			if arr.Size.Constant == nil {
				return nil, fmt.Errorf("shader: uniform %s is a runtime-sized array", m.Name)
			}
			u.ArrayLen = int(*arr.Size.Constant)
			u.Stride = arr.Stride
			elem = mod.Types[arr.Base].Inner
		}
		switch t := elem.(type) {
		case ir.ScalarType:
			u.Kind = kindOf(t.Kind)
		case ir.VectorType:
			u.Kind = kindOf(t.Scalar.Kind)
			u.Rows = int(t.Size)
		case ir.MatrixType:
			u.Kind = kindOf(t.Scalar.Kind)
			u.Columns = int(t.Columns)
			u.Rows = int(t.Rows)
		default:
			return nil, fmt.Errorf("shader: uniform %s has unsupported type", m.Name)
		}
		if u.Stride == 0 {
			u.Stride = ir.TypeSize(mod, m.Type)
		}
		blk.Uniforms = append(blk.Uniforms, u)
	}
	return blk, nil
}

func collectInputs(mod *ir.Module, name string, th ir.TypeHandle, binding *ir.Binding, out *Module) {
	inner := mod.Types[th].Inner
	if binding != nil {
		loc, ok := (*binding).(ir.LocationBinding)
		if !ok {
			return
		}
		kind, n := components(inner)
		out.Inputs = append(out.Inputs, Input{Name: name, Location: loc.Location, Kind: kind, Components: n})
		return
	}
	if st, ok := inner.(ir.StructType); ok {
		for _, m := range st.Members {
			if m.Binding != nil {
				collectInputs(mod, m.Name, m.Type, m.Binding, out)
			}
		}
	}
}

func collectOutputs(mod *ir.Module, th ir.TypeHandle, binding *ir.Binding, out *Module) {
	if binding != nil {
		if loc, ok := (*binding).(ir.LocationBinding); ok {
			out.Outputs = append(out.Outputs, loc.Location)
		}
		return
	}
	if st, ok := mod.Types[th].Inner.(ir.StructType); ok {
		for _, m := range st.Members {
			if m.Binding != nil {
				collectOutputs(mod, m.Type, m.Binding, out)
			}
		}
	}
}

func components(inner ir.TypeInner) (ScalarKind, int) {
	switch t := inner.(type) {
	case ir.ScalarType:
		return kindOf(t.Kind), 1
	case ir.VectorType:
		return kindOf(t.Scalar.Kind), int(t.Size)
	}
	return KindFloat, 4
}
