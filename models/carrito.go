package models

// ItemCarrito is one session cart entry. Only the product id and the quantity
// live in the session; prices and names are resolved against the catalog when
// the cart is rendered, so an admin price change reaches carts immediately.
type ItemCarrito struct {
	ProductoID string `json:"producto_id"`
	Cantidad   int    `json:"cantidad"`
}

// AgregarAlCarrito adds one unit of the product, incrementing the existing
// entry when the product is already in the cart.
func AgregarAlCarrito(items []ItemCarrito, productoID string) []ItemCarrito {
	for i := range items {
		if items[i].ProductoID == productoID {
			items[i].Cantidad++
			return items
		}
	}
	return append(items, ItemCarrito{ProductoID: productoID, Cantidad: 1})
}

// QuitarDelCarrito removes one unit of the product; the entry disappears when
// its quantity reaches zero. Unknown ids are a no-op.
func QuitarDelCarrito(items []ItemCarrito, productoID string) []ItemCarrito {
	for i := range items {
		if items[i].ProductoID != productoID {
			continue
		}
		items[i].Cantidad--
		if items[i].Cantidad <= 0 {
			return append(items[:i], items[i+1:]...)
		}
		return items
	}
	return items
}
