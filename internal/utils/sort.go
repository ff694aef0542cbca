package utils

// QuickSort возвращает отсортированную копию items.
// compare возвращает отрицательное число, если a раньше b, ноль при равенстве.
// Равные элементы сохраняют исходный порядок.
func QuickSort[T any](items []T, compare func(a, b T) int) []T {
	if len(items) < 2 {
		return append([]T(nil), items...)
	}

	// Выбираем опорный элемент
	pivot := items[len(items)/2]

	// Разделяем слайс на три части
	less := make([]T, 0)
	equal := make([]T, 0)
	greater := make([]T, 0)

	for _, item := range items {
		switch c := compare(item, pivot); {
		case c < 0:
			less = append(less, item)
		case c == 0:
			equal = append(equal, item)
		default:
			greater = append(greater, item)
		}
	}

	// Рекурсивно сортируем подмассивы и объединяем их
	return append(append(QuickSort(less, compare), equal...), QuickSort(greater, compare)...)
}

// Reverse меняет порядок сравнения на обратный
func Reverse[T any](compare func(a, b T) int) func(a, b T) int {
	return func(a, b T) int {
		return compare(b, a)
	}
}
