package mesh

import (
	"bytes"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"math"
	"os"
	"path/filepath"

	"github.com/qmuntal/gltf"

	"github.com/picogfx/pico3d/pkg/math3d"
)

// LoadGLB loads a binary GLTF (.glb) file into a TriangleGroup.
func LoadGLB(path string) (*TriangleGroup, error) {
	doc, err := gltf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open gltf: %w", err)
	}
	return groupFromDocument(doc, filepath.Base(path))
}

// LoadGLBWithTexture loads a GLB file and additionally decodes the first
// texture image it references. The image is nil when none is present.
func LoadGLBWithTexture(path string) (*TriangleGroup, image.Image, error) {
	doc, err := gltf.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("open gltf: %w", err)
	}

	group, err := groupFromDocument(doc, filepath.Base(path))
	if err != nil {
		return nil, nil, err
	}

	return group, firstTextureImage(doc, path), nil
}

func groupFromDocument(doc *gltf.Document, name string) (*TriangleGroup, error) {
	group := NewTriangleGroup(name)

	for _, m := range doc.Meshes {
		for _, prim := range m.Primitives {
			if prim.Mode != gltf.PrimitiveTriangles && prim.Mode != 0 {
				continue
			}
			if err := appendPrimitive(doc, prim, group); err != nil {
				return nil, fmt.Errorf("mesh %q: %w", m.Name, err)
			}
		}
	}

	// One UV per vertex or none; a partially UV'd document drops UVs.
	if len(group.UVs) > 0 && len(group.UVs) != len(group.Positions) {
		group.UVs = nil
	}

	group.CalculateBounds()

	return group, nil
}

func appendPrimitive(doc *gltf.Document, prim *gltf.Primitive, group *TriangleGroup) error {
	posIdx, ok := prim.Attributes[gltf.POSITION]
	if !ok {
		return nil
	}

	positions, err := readFloats(doc, posIdx, 3)
	if err != nil {
		return fmt.Errorf("positions: %w", err)
	}

	var uvs []float32
	if uvIdx, ok := prim.Attributes[gltf.TEXCOORD_0]; ok {
		uvs, err = readFloats(doc, uvIdx, 2)
		if err != nil {
			return fmt.Errorf("uvs: %w", err)
		}
	}

	base := len(group.Positions)
	vertexCount := len(positions) / 3

	for i := range vertexCount {
		group.Positions = append(group.Positions,
			math3d.V3(positions[i*3], positions[i*3+1], positions[i*3+2]))
		if i*2+1 < len(uvs) {
			// GLTF puts V=0 at the top of the image; flip to bottom-left origin
			group.UVs = append(group.UVs, math3d.V2(uvs[i*2], 1-uvs[i*2+1]))
		}
	}

	if prim.Indices != nil {
		indices, err := readScalars(doc, *prim.Indices)
		if err != nil {
			return fmt.Errorf("indices: %w", err)
		}
		for i := 0; i+2 < len(indices); i += 3 {
			group.Faces = append(group.Faces, Face{V: [3]int{
				base + indices[i],
				base + indices[i+1],
				base + indices[i+2],
			}})
		}
	} else {
		for i := 0; i+2 < vertexCount; i += 3 {
			group.Faces = append(group.Faces, Face{V: [3]int{
				base + i,
				base + i + 1,
				base + i + 2,
			}})
		}
	}

	return nil
}

// accessorBytes resolves an accessor to its backing byte slice, start
// offset, stride, and element count. Only embedded (GLB) buffers are
// supported.
func accessorBytes(doc *gltf.Document, accessor *gltf.Accessor, defaultStride int) ([]byte, int, int, int, error) {
	if accessor.BufferView == nil {
		return nil, 0, 0, 0, fmt.Errorf("accessor has no buffer view")
	}

	view := doc.BufferViews[*accessor.BufferView]
	buffer := doc.Buffers[view.Buffer]
	if buffer.URI != "" {
		return nil, 0, 0, 0, fmt.Errorf("external buffers not supported")
	}
	if buffer.Data == nil {
		return nil, 0, 0, 0, fmt.Errorf("buffer has no data")
	}

	stride := view.ByteStride
	if stride == 0 {
		stride = defaultStride
	}

	return buffer.Data, view.ByteOffset + accessor.ByteOffset, stride, accessor.Count, nil
}

// readFloats reads a float accessor with comps components per element
// into a flat slice of count*comps values.
func readFloats(doc *gltf.Document, accessorIdx int, comps int) ([]float32, error) {
	accessor := doc.Accessors[accessorIdx]
	if accessor.ComponentType != gltf.ComponentFloat {
		return nil, fmt.Errorf("expected float components, got %v", accessor.ComponentType)
	}
	if got := accessorComponents(accessor.Type); got != comps {
		return nil, fmt.Errorf("expected %d components, got %d", comps, got)
	}

	data, start, stride, count, err := accessorBytes(doc, accessor, comps*4)
	if err != nil {
		return nil, err
	}

	out := make([]float32, 0, count*comps)
	for i := range count {
		offset := start + i*stride
		for j := range comps {
			out = append(out, leFloat32(data[offset+j*4:]))
		}
	}
	return out, nil
}

// readScalars reads an index accessor of ubyte, ushort, or uint elements.
func readScalars(doc *gltf.Document, accessorIdx int) ([]int, error) {
	accessor := doc.Accessors[accessorIdx]
	if accessor.Type != gltf.AccessorScalar {
		return nil, fmt.Errorf("expected SCALAR, got %v", accessor.Type)
	}

	var width int
	switch accessor.ComponentType {
	case gltf.ComponentUbyte:
		width = 1
	case gltf.ComponentUshort:
		width = 2
	case gltf.ComponentUint:
		width = 4
	default:
		return nil, fmt.Errorf("unsupported index component type: %v", accessor.ComponentType)
	}

	data, start, stride, count, err := accessorBytes(doc, accessor, width)
	if err != nil {
		return nil, err
	}

	out := make([]int, count)
	for i := range count {
		offset := start + i*stride
		switch width {
		case 1:
			out[i] = int(data[offset])
		case 2:
			out[i] = int(uint16(data[offset]) | uint16(data[offset+1])<<8)
		case 4:
			out[i] = int(uint32(data[offset]) |
				uint32(data[offset+1])<<8 |
				uint32(data[offset+2])<<16 |
				uint32(data[offset+3])<<24)
		}
	}
	return out, nil
}

func accessorComponents(t gltf.AccessorType) int {
	switch t {
	case gltf.AccessorScalar:
		return 1
	case gltf.AccessorVec2:
		return 2
	case gltf.AccessorVec3:
		return 3
	case gltf.AccessorVec4:
		return 4
	default:
		return 0
	}
}

func leFloat32(b []byte) float32 {
	bits := uint32(b[0]) | uint32(b[1])<<8 | uint32(b[2])<<16 | uint32(b[3])<<24
	return math.Float32frombits(bits)
}

// firstTextureImage decodes the first usable image in the document,
// whether embedded in a buffer view or referenced as a sibling file.
func firstTextureImage(doc *gltf.Document, docPath string) image.Image {
	for _, img := range doc.Images {
		var data []byte
		if img.BufferView != nil {
			view := doc.BufferViews[*img.BufferView]
			buffer := doc.Buffers[view.Buffer]
			if buffer.Data != nil {
				data = buffer.Data[view.ByteOffset : view.ByteOffset+view.ByteLength]
			}
		} else if img.URI != "" {
			data, _ = os.ReadFile(filepath.Join(filepath.Dir(docPath), img.URI))
		}

		if len(data) == 0 {
			continue
		}
		if decoded, _, err := image.Decode(bytes.NewReader(data)); err == nil {
			return decoded
		}
	}
	return nil
}
