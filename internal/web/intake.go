package web

import (
	"context"
	"io"

	"github.com/a-h/templ"
)

// IntakeForm is the pre-party questionnaire. The three selects are
// required here on the form; the API stores whatever shape arrives.
func IntakeForm(code string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := io.WriteString(w, pageShell("Dead Air — Intake", `      <header>
        <h1>Before the party</h1>
        <p>Your host needs a few answers so the story fits you.</p>
      </header>

      <section>
        <form id="intakeForm">
          <label>At a party, you are usually...
            <select name="socialStyle" required>
              <option value="">Choose one</option>
              <option value="center-of-attention">Center of attention</option>
              <option value="one-good-conversation">Deep in one good conversation</option>
              <option value="observer">Watching from the edges</option>
            </select>
          </label>
          <label>How far into character will you go?
            <select name="comfort" required>
              <option value="">Choose one</option>
              <option value="full-character">Full character, voices and all</option>
              <option value="light">Light participation</option>
              <option value="reader">I'll read my lines and that's it</option>
            </select>
          </label>
          <label>Drink of choice
            <select name="drink" required>
              <option value="">Choose one</option>
              <option value="cocktail">Cocktail</option>
              <option value="wine">Wine</option>
              <option value="beer">Beer</option>
              <option value="none">Nothing alcoholic</option>
            </select>
          </label>
          <label>Allergies or dietary notes
            <input name="allergies" placeholder="optional"/>
          </label>
          <label>Anything your host should know?
            <textarea name="notes" rows="3" placeholder="optional"></textarea>
          </label>
          <button type="submit">Submit</button>
        </form>
        <div id="intakeResult" class="result"></div>
      </section>

      <script>
        const code = "`+code+`";
        const form = document.getElementById("intakeForm");
        const result = document.getElementById("intakeResult");

        form.addEventListener("submit", async (event) => {
          event.preventDefault();
          result.textContent = "Saving...";
          const answers = {
            socialStyle: form.elements.socialStyle.value,
            comfort: form.elements.comfort.value,
            drink: form.elements.drink.value,
            allergies: form.elements.allergies.value.trim(),
            notes: form.elements.notes.value.trim()
          };
          const res = await fetch("/api/intake/save", {
            method: "POST",
            headers: { "Content-Type": "application/json" },
            body: JSON.stringify({ code, answers })
          });
          const data = await res.json();
          if (!res.ok) {
            result.textContent = data.error || "Could not save your answers.";
            return;
          }
          await fetch("/api/intake/after-submit", {
            method: "POST",
            headers: { "Content-Type": "application/json" },
            body: JSON.stringify({ gameId: data.gameId })
          });
          result.textContent = "All set. See you at the party.";
          window.location = "/play/" + encodeURIComponent(code);
        });
      </script>`))
		return err
	})
}
