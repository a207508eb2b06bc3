package mailer

// Static HTML bodies. Dynamic values are escaped by the callers in smtp.go.

const verificationCodeHTML = `
<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
    <h2 style="color: #1db954;">Sonata Music</h2>
    <h3>Email Verification</h3>
    <p>Hello,</p>
    <p>Use the code below to verify your Sonata Music account:</p>
    <div style="background: #f0f0f0; padding: 20px; text-align: center; font-size: 24px; font-weight: bold; letter-spacing: 5px; margin: 20px 0;">
        %s
    </div>
    <p>This code is valid for 10 minutes.</p>
    <p>If you did not request this, you can safely ignore this email.</p>
    <br>
    <p>Best regards,<br>The Sonata Music Team</p>
</div>`

const applicationBioHTML = `<p><strong>Biography:</strong><br>%s</p>`

const artistApplicationHTML = `
<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
    <h2 style="color: #1db954;">Sonata Music - Admin Panel</h2>
    <h3>New Artist Application</h3>

    <div style="background: #f9f9f9; padding: 20px; border-radius: 8px; margin: 20px 0;">
        <h4>Application Details:</h4>
        <p><strong>Artist Name:</strong> %s</p>
        <p><strong>Email:</strong> %s</p>
        <p><strong>Birth Date:</strong> %s</p>
        <p><strong>Phone:</strong> %s</p>
        <p><strong>Social Media:</strong> <a href="%s" target="_blank">%s</a></p>
        %s
        <p><strong>Applied At:</strong> %s</p>
    </div>

    <div style="text-align: center; margin: 30px 0;">
        <a href="%s" style="background: #1db954; color: white; padding: 15px 30px; text-decoration: none; border-radius: 5px; margin: 0 10px; display: inline-block;">
            APPROVE
        </a>
        <a href="%s" style="background: #e22134; color: white; padding: 15px 30px; text-decoration: none; border-radius: 5px; margin: 0 10px; display: inline-block;">
            REJECT
        </a>
    </div>

    <p><small>The links in this email are single-use and expire for security reasons.</small></p>
</div>`

const artistApprovedHTML = `
<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
    <h2 style="color: #1db954;">Sonata Music</h2>
    <h3>Congratulations! Your Artist Application Was Approved</h3>
    <p>Hello,</p>
    <p>Your Sonata Music artist application has been approved. You can now upload your songs to the platform.</p>

    <div style="background: #f0f8ff; padding: 20px; border-radius: 8px; margin: 20px 0;">
        <h4>Your Login Credentials:</h4>
        <p><strong>Email:</strong> %s</p>
        <p><strong>Temporary Password:</strong> <span style="background: #e8e8e8; padding: 5px 10px; border-radius: 4px; font-family: monospace;">%s</span></p>
    </div>

    <p><strong>Important:</strong> For your security we recommend changing this password after your first login.</p>

    <br>
    <p>Welcome to the world of music!<br>The Sonata Music Team</p>
</div>`

const artistRejectedHTML = `
<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
    <h2 style="color: #1db954;">Sonata Music</h2>
    <h3>About Your Artist Application</h3>
    <p>Hello,</p>
    <p>Unfortunately your Sonata Music artist application could not be accepted at this time.</p>

    <div style="background: #fff3cd; padding: 20px; border-radius: 8px; margin: 20px 0; border-left: 4px solid #ffc107;">
        <p><strong>Rejection Reason:</strong> %s</p>
    </div>

    <p>This is not permanent. You are welcome to apply again once your profile has grown.</p>
    <p>Feel free to contact us with any questions.</p>

    <br>
    <p>Best regards,<br>The Sonata Music Team</p>
</div>`
