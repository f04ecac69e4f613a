package app

import "github.com/gofiber/fiber/v2"

// Static informational pages required for the Meta app review process.

const homeHTML = `
<h1>Welcome to Our WhatsApp Service</h1>
<p><a href='/privacy-policy'>Privacy Policy</a></p>
<p><a href='/terms-of-service'>Terms of Service</a></p>
`

const privacyPolicyHTML = `
<h1>Privacy Policy</h1>
<p>We collect your WhatsApp name and message content to support you better.</p>
<p>Your data is stored securely and not shared with third parties without your consent.</p>
<p>To access or delete your data, message "My data" or "Delete my data".</p>
<p>Contact: support@example.com</p>
`

const termsOfServiceHTML = `
<h1>Terms of Service</h1>
<p>By using this WhatsApp service, you agree to allow us to store and use your data to provide insights and support.</p>
<p>You must not misuse or attempt to breach this service.</p>
<p>We may update these terms anytime. Continued use implies acceptance.</p>
`

func homePage(c *fiber.Ctx) error {
	c.Type("html")
	return c.SendString(homeHTML)
}

func privacyPolicyPage(c *fiber.Ctx) error {
	c.Type("html")
	return c.SendString(privacyPolicyHTML)
}

func termsOfServicePage(c *fiber.Ctx) error {
	c.Type("html")
	return c.SendString(termsOfServiceHTML)
}
