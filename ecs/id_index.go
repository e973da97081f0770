package ecs

import (
	"encoding/binary"
	"slices"

	"github.com/cespare/xxhash/v2"
	"github.com/kamstrup/intmap"
)

// idIndex maps the hash of an IDComponent's (name, id) pair to the active
// entities carrying it.
type idIndex struct {
	buckets *intmap.Map[uint64, []*Entity]
}

func newIDIndex() *idIndex {
	return &idIndex{buckets: intmap.New[uint64, []*Entity](64)}
}

func idKey(name string, id int) uint64 {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], uint64(id))

	d := xxhash.New()
	_, _ = d.WriteString(name)
	_, _ = d.Write(buf[:])
	return d.Sum64()
}

func (x *idIndex) add(e *Entity, c *IDComponent) {
	key := idKey(c.name, c.id)
	bucket, _ := x.buckets.Get(key)
	if slices.Contains(bucket, e) {
		return
	}
	x.buckets.Put(key, append(bucket, e))
}

func (x *idIndex) remove(e *Entity, c *IDComponent) {
	key := idKey(c.name, c.id)
	bucket, ok := x.buckets.Get(key)
	if !ok {
		return
	}
	bucket = slices.DeleteFunc(bucket, func(other *Entity) bool { return other == e })
	if len(bucket) == 0 {
		x.buckets.Del(key)
		return
	}
	x.buckets.Put(key, bucket)
}

func (x *idIndex) find(name string, id int) (*Entity, bool) {
	bucket, _ := x.buckets.Get(idKey(name, id))
	for _, e := range bucket {
		c, ok := Lookup[*IDComponent](e)
		if ok && c.name == name && c.id == id {
			return e, true
		}
	}
	return nil, false
}

func (x *idIndex) clear() {
	x.buckets.Clear()
}
