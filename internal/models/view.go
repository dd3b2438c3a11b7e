package models

// View 只读记录集合
// 计算完成后的记录通过 View 共享给所有调用方；At 返回值拷贝，调用方无法修改底层数据
type View[T any] struct {
	items []T
}

// NewView 包装已计算好的切片，调用方之后不得再修改该切片
func NewView[T any](items []T) View[T] {
	return View[T]{items: items}
}

// Len 记录数
func (v View[T]) Len() int {
	return len(v.items)
}

// At 第 i 条记录（值拷贝）
func (v View[T]) At(i int) T {
	return v.items[i]
}

// Each 按原始顺序遍历，fn 返回 false 时停止
func (v View[T]) Each(fn func(i int, item T) bool) {
	for i := range v.items {
		if !fn(i, v.items[i]) {
			return
		}
	}
}

// Filter 返回满足条件的新 View（pred 为 nil 时返回自身）
func (v View[T]) Filter(pred func(T) bool) View[T] {
	if pred == nil {
		return v
	}
	out := make([]T, 0, len(v.items))
	for _, item := range v.items {
		if pred(item) {
			out = append(out, item)
		}
	}
	return View[T]{items: out}
}

// Collect 返回记录副本（用于序列化或导出）
func (v View[T]) Collect() []T {
	out := make([]T, len(v.items))
	copy(out, v.items)
	return out
}
