package web

import (
	"context"
	"io"

	"github.com/a-h/templ"
)

func Home() templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := io.WriteString(w, pageShell("Dead Air", `      <header>
        <h1>Dead Air</h1>
        <p>A narrated party game for six to twelve guests. Redeem your code to start hosting.</p>
      </header>

      <section>
        <h2>Redeem a code</h2>
        <form id="redeemForm">
          <input name="code" placeholder="DA-XXXXXX" autocomplete="off" required/>
          <button type="submit">Redeem</button>
        </form>
        <div id="redeemResult" class="result"></div>
      </section>

      <section>
        <h2>Try it out</h2>
        <p>No code yet? Create a mock purchase and play with a test game.</p>
        <form id="purchaseForm">
          <label>Guests
            <input name="packSize" type="number" min="6" max="12" value="8"/>
          </label>
          <label>Email (optional)
            <input name="email" type="email" placeholder="you@example.com"/>
          </label>
          <button type="submit" class="quiet">Create mock purchase</button>
        </form>
        <div id="purchaseResult" class="result"></div>
      </section>

      <script>
        const redeemForm = document.getElementById("redeemForm");
        const redeemResult = document.getElementById("redeemResult");
        const purchaseForm = document.getElementById("purchaseForm");
        const purchaseResult = document.getElementById("purchaseResult");

        redeemForm.addEventListener("submit", async (event) => {
          event.preventDefault();
          redeemResult.textContent = "Checking code...";
          const code = redeemForm.elements.code.value.trim();
          const res = await fetch("/api/redeem", {
            method: "POST",
            headers: { "Content-Type": "application/json" },
            body: JSON.stringify({ code })
          });
          const data = await res.json();
          if (!res.ok) {
            redeemResult.textContent = data.error || "Failed to redeem code.";
            return;
          }
          window.location = "/host/" + data.gameId + "?pin=" + encodeURIComponent(data.hostPin);
        });

        purchaseForm.addEventListener("submit", async (event) => {
          event.preventDefault();
          purchaseResult.textContent = "Creating purchase...";
          const packSize = parseInt(purchaseForm.elements.packSize.value, 10);
          const email = purchaseForm.elements.email.value.trim();
          const body = email ? { packSize, email } : { packSize };
          const res = await fetch("/api/mock-purchase", {
            method: "POST",
            headers: { "Content-Type": "application/json" },
            body: JSON.stringify(body)
          });
          const data = await res.json();
          if (!res.ok) {
            purchaseResult.textContent = data.error || "Failed to create purchase.";
            return;
          }
          purchaseResult.textContent = "Redeem code: " + data.redeemCode;
        });
      </script>`))
		return err
	})
}
