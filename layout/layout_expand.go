// Copyright (c) 2024 John Millikin <john@john-millikin.com>
//
// Permission to use, copy, modify, and/or distribute this software for any
// purpose with or without fee is hereby granted.
//
// THE SOFTWARE IS PROVIDED "AS IS" AND THE AUTHOR DISCLAIMS ALL WARRANTIES WITH
// REGARD TO THIS SOFTWARE INCLUDING ALL IMPLIED WARRANTIES OF MERCHANTABILITY
// AND FITNESS. IN NO EVENT SHALL THE AUTHOR BE LIABLE FOR ANY SPECIAL, DIRECT,
// INDIRECT, OR CONSEQUENTIAL DAMAGES OR ANY DAMAGES WHATSOEVER RESULTING FROM
// LOSS OF USE, DATA OR PROFITS, WHETHER IN AN ACTION OF CONTRACT, NEGLIGENCE OR
// OTHER TORTIOUS ACTION, ARISING OUT OF OR IN CONNECTION WITH THE USE OR
// PERFORMANCE OF THIS SOFTWARE.
//
// SPDX-License-Identifier: 0BSD

package layout

// expand normalizes a document so that floating documents become adjacent
// to each other wherever the layout allows it, then reorders them by
// priority. After expansion a floating document renders as its content.
func expand(d Document) Document {
	switch d := d.(type) {
	case *beside:
		var items []Document
		flattenBeside(d, &items)
		return expandBeside(items)
	case *above:
		var items []Document
		flattenAbove(d, &items)
		for ii := range items {
			items[ii] = expand(items[ii])
		}
		sortFloats(items, func(d *floating) int { return d.v })
		out := items[len(items)-1]
		for ii := len(items) - 2; ii >= 0; ii-- {
			out = Above(items[ii], out)
		}
		return out
	case *nest:
		return Nest(d.n, expand(d.d))
	case *sep:
		ds := make([]Document, len(d.ds))
		for ii, item := range d.ds {
			ds[ii] = expand(item)
		}
		return &sep{ds: ds, offset: d.offset, par: d.par}
	case *floating:
		return &floating{d: expand(d.d), h: d.h, v: d.v}
	}
	return d
}

func flattenBeside(d Document, out *[]Document) {
	if d, ok := d.(*beside); ok {
		flattenBeside(d.a, out)
		flattenBeside(d.b, out)
		return
	}
	*out = append(*out, d)
}

func flattenAbove(d Document, out *[]Document) {
	if d, ok := d.(*above); ok {
		flattenAbove(d.a, out)
		flattenAbove(d.b, out)
		return
	}
	*out = append(*out, d)
}

// expandBeside rewrites a horizontal chain. Whatever follows a vertical or
// composite document is moved inside its last line:
//
//	beside(above(X, Y), Z)  =>  above(X, beside(Y, Z))
//	beside(nest(N, X), Z)   =>  nest(N, beside(X, Z))
//	beside(sep([..., X]), Z) =>  sep([..., beside(X, Z)])
//
// so that a trailing float can meet the floats inside. The last rewrite
// changes which layouts the Sep considers, so it is only applied when Z
// starts with a float.
func expandBeside(items []Document) Document {
	for ii := 0; ii < len(items)-1; ii++ {
		rest := items[ii+1:]
		var pushed Document
		switch item := items[ii].(type) {
		case *above:
			if !IsEmpty(item.b) {
				pushed = Above(expand(item.a), expandChain(item.b, rest))
			}
		case *nest:
			pushed = Nest(item.n, expandChain(item.d, rest))
		case *sep:
			if _, ok := rest[0].(*floating); !ok {
				break
			}
			last := len(item.ds) - 1
			ds := make([]Document, len(item.ds))
			for jj, elem := range item.ds[:last] {
				ds[jj] = expand(elem)
			}
			ds[last] = expandChain(item.ds[last], rest)
			pushed = &sep{ds: ds, offset: item.offset, par: item.par}
		}
		if pushed != nil {
			head := make([]Document, ii, ii+1)
			for jj := range head {
				head[jj] = expand(items[jj])
			}
			head = append(head, pushed)
			return joinBeside(head)
		}
	}

	out := make([]Document, len(items))
	for ii, item := range items {
		out[ii] = expand(item)
	}
	return joinBeside(out)
}

func expandChain(first Document, rest []Document) Document {
	var items []Document
	flattenBeside(first, &items)
	for _, d := range rest {
		flattenBeside(d, &items)
	}
	return expandBeside(items)
}

func joinBeside(items []Document) Document {
	sortFloats(items, func(d *floating) int { return d.h })
	out := Empty()
	for _, item := range items {
		out = Beside(out, item)
	}
	return out
}

// sortFloats moves adjacent floating documents so that, within each run of
// floats, lower priorities come first. The sort is stable.
func sortFloats(items []Document, priority func(*floating) int) {
	for swapped := true; swapped; {
		swapped = false
		for ii := 0; ii+1 < len(items); ii++ {
			a, aOK := items[ii].(*floating)
			b, bOK := items[ii+1].(*floating)
			if aOK && bOK && priority(a) > priority(b) {
				items[ii], items[ii+1] = b, a
				swapped = true
			}
		}
	}
}
