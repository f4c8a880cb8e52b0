package notify

import "fmt"

func welcomeTemplate(name, email string) (subject, html string) {
	subject = "Welcome to Projectify!"
	html = fmt.Sprintf(`<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
  <h1 style="color: #f97316;">Welcome to Projectify!</h1>
  <p>Hi %s,</p>
  <p>Welcome to Projectify! We're excited to have you join our platform where amazing projects come to life.</p>
  <h3>What's next?</h3>
  <ul>
    <li>Browse available projects in your dashboard</li>
    <li>Apply to projects that match your skills</li>
    <li>Track your application status in real-time</li>
  </ul>
  <p>Happy project hunting!</p>
  <p><strong>The Projectify Team</strong></p>
  <hr>
  <p style="font-size: 12px; color: #666;">This email was sent to %s. If you didn't create an account, please ignore this email.</p>
</div>`, name, email)
	return subject, html
}

func projectApprovedTemplate(name, projectName, projectDescription string) (subject, html string) {
	subject = fmt.Sprintf("Great News! Project %q has been approved", projectName)
	html = fmt.Sprintf(`<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
  <h1 style="color: #10b981;">Project Approved!</h1>
  <p>Hi %s,</p>
  <p>We have great news! The project "<strong>%s</strong>" that you applied to has been approved and is now active.</p>
  <div style="background-color: #f3f4f6; padding: 20px; border-radius: 8px; margin: 20px 0;">
    <p><strong>Name:</strong> %s</p>
    <p><strong>Description:</strong> %s</p>
  </div>
  <p>You can now view the full project details and next steps in your dashboard.</p>
  <p><strong>The Projectify Team</strong></p>
</div>`, name, projectName, projectName, projectDescription)
	return subject, html
}

func applicationApprovedTemplate(name, projectName string) (subject, html string) {
	subject = fmt.Sprintf("Your application for %q has been approved!", projectName)
	html = fmt.Sprintf(`<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
  <h1 style="color: #10b981;">Congratulations!</h1>
  <p>Hi %s,</p>
  <p>Fantastic news! Your application for the project "<strong>%s</strong>" has been approved!</p>
  <div style="background-color: #ecfdf5; border-left: 4px solid #10b981; padding: 20px; margin: 20px 0;">
    <p style="margin: 0;"><strong>What happens next?</strong></p>
    <ul style="margin: 10px 0;">
      <li>Check your dashboard for project details and timeline</li>
      <li>You may receive additional communication from the project team</li>
    </ul>
  </div>
  <p><strong>The Projectify Team</strong></p>
</div>`, name, projectName)
	return subject, html
}

func applicationRejectedTemplate(name, projectName, frontendURL string) (subject, html string) {
	subject = fmt.Sprintf("Update on your application for %q", projectName)
	html = fmt.Sprintf(`<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
  <h1 style="color: #f97316;">Application Update</h1>
  <p>Hi %s,</p>
  <p>Thank you for your interest in the project "<strong>%s</strong>". After careful consideration, we've decided to move forward with other candidates for this particular project.</p>
  <p>There are many other exciting projects available on our platform. Keep applying!</p>
  <p><strong>The Projectify Team</strong></p>
  <hr>
  <p style="text-align: center;">
    <a href="%s/user/dashboard" style="background-color: #f97316; color: white; padding: 12px 24px; text-decoration: none; border-radius: 6px;">Browse More Projects</a>
  </p>
</div>`, name, projectName, frontendURL)
	return subject, html
}

func adminDigestTemplate(stats DigestStats) (subject, html string) {
	subject = "Projectify daily digest"
	html = fmt.Sprintf(`<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
  <h1 style="color: #f97316;">Daily Digest</h1>
  <ul>
    <li>Projects: %d total, %d pending review</li>
    <li>Applications: %d total, %d pending review</li>
  </ul>
  <p><strong>The Projectify Team</strong></p>
</div>`, stats.TotalProjects, stats.PendingProjects, stats.TotalApplications, stats.PendingApplications)
	return subject, html
}
