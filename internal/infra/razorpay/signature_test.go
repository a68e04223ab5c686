package razorpay

import "testing"

func TestVerifyPaymentSignature(t *testing.T) {
	secret := "secret"
	sig := PaymentSignature("order_abc", "pay_xyz", secret)

	if !VerifyPaymentSignature("order_abc", "pay_xyz", sig, secret) {
		t.Fatal("expected signature to be valid")
	}
	if VerifyPaymentSignature("order_abc", "pay_xyz", sig, "wrong-secret") {
		t.Fatal("unexpected valid signature with wrong secret")
	}
	if VerifyPaymentSignature("order_abc", "pay_other", sig, secret) {
		t.Fatal("unexpected valid signature for different payment id")
	}
	if VerifyPaymentSignature("order_abc", "pay_xyz", "deadbeef", secret) {
		t.Fatal("unexpected valid tampered signature")
	}
	if VerifyPaymentSignature("order_abc", "pay_xyz", "not-hex!!", secret) {
		t.Fatal("unexpected valid non-hex signature")
	}
}

func TestVerifyWebhookSignature(t *testing.T) {
	body := []byte("{\"ok\":true}")
	secret := "secret"
	signature := "f6b4a2841c93f8bf2fb8f2c13d8fb0b6c8e8019f09ee405d248daa8385fad638"

	if !VerifyWebhookSignature(body, signature, secret) {
		t.Fatal("expected signature to be valid")
	}
	if VerifyWebhookSignature([]byte("{\"ok\":false}"), signature, secret) {
		t.Fatal("unexpected valid signature for altered body")
	}
	if VerifyWebhookSignature(body, "deadbeef", secret) {
		t.Fatal("unexpected valid signature")
	}
}
