package wasi

import (
	"context"

	"github.com/tetratelabs/wazero"
	"github.com/tetratelabs/wazero/api"

	"github.com/clockwerk-io/systime/errors"
)

// Host bundles the wasi:clocks and wasi:io/poll host implementations over
// one shared resource table.
type Host struct {
	Wall      *WallClockHost
	Monotonic *MonotonicClockHost
	Poll      *PollHost

	resources *Table
}

// NewHost creates the clock host bundle with a fresh resource table.
func NewHost() *Host {
	resources := NewTable()
	return &Host{
		Wall:      NewWallClockHost(),
		Monotonic: NewMonotonicClockHost(resources),
		Poll:      NewPollHost(resources),
		resources: resources,
	}
}

// Resources exposes the shared handle table, mainly for tests and
// embedders that manage pollables directly.
func (h *Host) Resources() *Table {
	return h.resources
}

// Close drops all outstanding pollables.
func (h *Host) Close() {
	h.resources.Clear()
}

// Instantiate registers the wall-clock, monotonic-clock and poll host
// modules on a wazero runtime so guest components can import them. Guests
// read wall time through a return pointer in the canonical layout
// (u64 seconds at offset 0, u32 nanoseconds at offset 8).
func (h *Host) Instantiate(ctx context.Context, r wazero.Runtime) error {
	i32 := []api.ValueType{api.ValueTypeI32}
	i64 := []api.ValueType{api.ValueTypeI64}
	i32x3 := []api.ValueType{api.ValueTypeI32, api.ValueTypeI32, api.ValueTypeI32}

	_, err := r.NewHostModuleBuilder(h.Wall.Namespace()).
		NewFunctionBuilder().
		WithGoModuleFunction(api.GoModuleFunc(func(ctx context.Context, mod api.Module, stack []uint64) {
			dt := h.Wall.Now(ctx)
			retptr := uint32(stack[0])
			mod.Memory().WriteUint64Le(retptr, dt.Seconds)
			mod.Memory().WriteUint32Le(retptr+8, dt.Nanoseconds)
		}), i32, nil).
		Export("now").
		NewFunctionBuilder().
		WithGoModuleFunction(api.GoModuleFunc(func(ctx context.Context, mod api.Module, stack []uint64) {
			dt := h.Wall.Resolution(ctx)
			retptr := uint32(stack[0])
			mod.Memory().WriteUint64Le(retptr, dt.Seconds)
			mod.Memory().WriteUint32Le(retptr+8, dt.Nanoseconds)
		}), i32, nil).
		Export("resolution").
		Instantiate(ctx)
	if err != nil {
		return errors.New(errors.PhaseHost, errors.KindRegistration).
			Op(h.Wall.Namespace()).
			Cause(err).
			Build()
	}

	_, err = r.NewHostModuleBuilder(h.Monotonic.Namespace()).
		NewFunctionBuilder().
		WithGoModuleFunction(api.GoModuleFunc(func(ctx context.Context, _ api.Module, stack []uint64) {
			stack[0] = h.Monotonic.Now(ctx)
		}), nil, i64).
		Export("now").
		NewFunctionBuilder().
		WithGoModuleFunction(api.GoModuleFunc(func(ctx context.Context, _ api.Module, stack []uint64) {
			stack[0] = h.Monotonic.Resolution(ctx)
		}), nil, i64).
		Export("resolution").
		NewFunctionBuilder().
		WithGoModuleFunction(api.GoModuleFunc(func(ctx context.Context, _ api.Module, stack []uint64) {
			stack[0] = uint64(h.Monotonic.SubscribeInstant(ctx, stack[0]))
		}), i64, i32).
		Export("subscribe-instant").
		NewFunctionBuilder().
		WithGoModuleFunction(api.GoModuleFunc(func(ctx context.Context, _ api.Module, stack []uint64) {
			stack[0] = uint64(h.Monotonic.SubscribeDuration(ctx, stack[0]))
		}), i64, i32).
		Export("subscribe-duration").
		Instantiate(ctx)
	if err != nil {
		return errors.New(errors.PhaseHost, errors.KindRegistration).
			Op(h.Monotonic.Namespace()).
			Cause(err).
			Build()
	}

	_, err = r.NewHostModuleBuilder(h.Poll.Namespace()).
		NewFunctionBuilder().
		WithGoModuleFunction(api.GoModuleFunc(func(ctx context.Context, mod api.Module, stack []uint64) {
			ptr := uint32(stack[0])
			length := uint32(stack[1])
			retptr := uint32(stack[2])

			handles := make([]uint32, 0, length)
			for i := uint32(0); i < length; i++ {
				handle, ok := mod.Memory().ReadUint32Le(ptr + i*4)
				if !ok {
					break
				}
				handles = append(handles, handle)
			}

			ready := h.Poll.Poll(ctx, handles)

			out := uint32(0)
			if len(ready) > 0 {
				var ok bool
				out, ok = guestAlloc(ctx, mod, uint32(len(ready))*4)
				if !ok {
					mod.Memory().WriteUint32Le(retptr, 0)
					mod.Memory().WriteUint32Le(retptr+4, 0)
					return
				}
				for i, idx := range ready {
					mod.Memory().WriteUint32Le(out+uint32(i)*4, idx)
				}
			}
			mod.Memory().WriteUint32Le(retptr, out)
			mod.Memory().WriteUint32Le(retptr+4, uint32(len(ready)))
		}), i32x3, nil).
		Export("poll").
		NewFunctionBuilder().
		WithGoModuleFunction(api.GoModuleFunc(func(ctx context.Context, _ api.Module, stack []uint64) {
			if h.Poll.MethodPollableReady(ctx, uint32(stack[0])) {
				stack[0] = 1
			} else {
				stack[0] = 0
			}
		}), i32, i32).
		Export("[method]pollable.ready").
		NewFunctionBuilder().
		WithGoModuleFunction(api.GoModuleFunc(func(ctx context.Context, _ api.Module, stack []uint64) {
			h.Poll.MethodPollableBlock(ctx, uint32(stack[0]))
		}), i32, nil).
		Export("[method]pollable.block").
		NewFunctionBuilder().
		WithGoModuleFunction(api.GoModuleFunc(func(ctx context.Context, _ api.Module, stack []uint64) {
			h.Poll.ResourceDropPollable(ctx, uint32(stack[0]))
		}), i32, nil).
		Export("[resource-drop]pollable").
		Instantiate(ctx)
	if err != nil {
		return errors.New(errors.PhaseHost, errors.KindRegistration).
			Op(h.Poll.Namespace()).
			Cause(err).
			Build()
	}

	return nil
}

// guestAlloc obtains a guest-memory buffer for a returned list through the
// caller's canonical realloc export. Guests without cabi_realloc cannot
// receive list results.
func guestAlloc(ctx context.Context, mod api.Module, size uint32) (uint32, bool) {
	realloc := mod.ExportedFunction("cabi_realloc")
	if realloc == nil {
		return 0, false
	}
	results, err := realloc.Call(ctx, 0, 0, 4, uint64(size))
	if err != nil || len(results) == 0 {
		return 0, false
	}
	return uint32(results[0]), true
}
