package meshlet

// assemble packs tris, in order, into meshlets tagged with modelID.
// A meshlet closes as soon as either cap is reached. A triangle whose new
// vertices would overflow the vertex cap starts a fresh meshlet instead.
func (b *Builder) assemble(tris [][3]uint32, modelID uint32) {
	if len(tris) == 0 {
		return
	}

	maxVerts := uint32(b.limits.MaxVertices)
	maxPrims := uint32(b.limits.MaxPrimitives)
	local := make(map[uint32]uint8, b.limits.MaxVertices)
	cur := b.openMeshlet(modelID)

	for _, tri := range tris {
		if cur.PrimCount > 0 && cur.VertexCount+newCorners(local, tri) > maxVerts {
			b.closeMeshlet(&cur)
			clear(local)
			cur = b.openMeshlet(modelID)
		}

		for _, g := range tri {
			li, ok := local[g]
			if !ok {
				li = uint8(cur.VertexCount)
				local[g] = li
				b.VertexIndices = append(b.VertexIndices, g)
				cur.VertexCount++
			}
			b.PrimitiveIndices = append(b.PrimitiveIndices, li)
		}
		cur.PrimCount++

		if cur.PrimCount >= maxPrims || cur.VertexCount >= maxVerts {
			b.closeMeshlet(&cur)
			clear(local)
			cur = b.openMeshlet(modelID)
		}
	}

	if cur.PrimCount > 0 {
		b.closeMeshlet(&cur)
	}
}

func (b *Builder) openMeshlet(modelID uint32) Descriptor {
	return Descriptor{
		VertexBegin: uint32(len(b.VertexIndices)),
		PrimBegin:   uint32(len(b.PrimitiveIndices)),
		ModelID:     modelID,
	}
}

func (b *Builder) closeMeshlet(d *Descriptor) {
	d.Sphere = b.fitMeshletSphere(d)
	b.Meshlets = append(b.Meshlets, *d)
}

// newCorners counts the distinct vertices of tri not yet in the meshlet.
func newCorners(local map[uint32]uint8, tri [3]uint32) uint32 {
	var n uint32
	for i, g := range tri {
		if _, ok := local[g]; ok {
			continue
		}
		dup := false
		for j := 0; j < i; j++ {
			if tri[j] == g {
				dup = true
				break
			}
		}
		if !dup {
			n++
		}
	}
	return n
}
