package request

import "testing"

func TestManualAccessRequest_ResolveSessionID(t *testing.T) {
	if got := (ManualAccessRequest{SessionID: " cs_1 ", SessionIDCamel: "cs_2"}).ResolveSessionID(); got != "cs_1" {
		t.Fatalf("expected cs_1, got %q", got)
	}
	if got := (ManualAccessRequest{SessionIDCamel: "cs_2"}).ResolveSessionID(); got != "cs_2" {
		t.Fatalf("expected cs_2, got %q", got)
	}
	if got := (ManualAccessRequest{}).ResolveSessionID(); got != "" {
		t.Fatalf("expected empty, got %q", got)
	}
}

func TestCartCheckoutRequest_ToCartItems(t *testing.T) {
	r := CartCheckoutRequest{Items: []CartItemRequest{
		{ID: " p-1 ", Name: " Erdbeerkonfitüre ", Image: "https://cdn.test/jam.png", Category: "jam", Weight: 250, Price: 8.9, Quantity: 2},
	}}
	items := r.ToCartItems()
	if len(items) != 1 {
		t.Fatalf("expected 1 item, got %d", len(items))
	}
	it := items[0]
	if it.ProductID != "p-1" || it.Name != "Erdbeerkonfitüre" || it.ImageURL != "https://cdn.test/jam.png" {
		t.Fatalf("unexpected item: %+v", it)
	}
	if it.WeightGrams != 250 || it.Price != 8.9 || it.Quantity != 2 {
		t.Fatalf("unexpected amounts: %+v", it)
	}
}
