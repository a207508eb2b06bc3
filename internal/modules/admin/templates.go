package admin

import "html/template"

// Server-rendered pages for the emailed admin links. Kept as one parsed
// set; handlers pick a block by name.
var pages = template.Must(template.New("admin").Parse(pagesHTML))

type noticeData struct {
	Title   string
	Message string
	Artist  *artistView
}

type approvedData struct {
	Artist       *artistView
	EmailSent    bool
	TempPassword string
}

type rejectFormData struct {
	Artist *artistView
	Email  string
}

type rejectedData struct {
	Artist    *artistView
	Email     string
	Reason    string
	EmailSent bool
}

type artistView struct {
	ArtistName      string
	Email           string
	Phone           string
	SocialMediaLink string
	Bio             string
}

const pagesHTML = `
{{define "head"}}<head><meta charset="utf-8"><title>Sonata Music - Admin</title></head>{{end}}

{{define "notice"}}
<html>
    {{template "head"}}
    <body style="font-family: Arial, sans-serif; text-align: center; padding: 50px; background: #f5f5f5;">
        <div style="background: white; padding: 40px; border-radius: 10px; box-shadow: 0 2px 10px rgba(0,0,0,0.1); max-width: 500px; margin: 0 auto;">
            <h2>{{.Title}}</h2>
            {{if .Artist}}
            <p><strong>Artist:</strong> {{.Artist.ArtistName}}</p>
            <p><strong>Email:</strong> {{.Artist.Email}}</p>
            {{end}}
            {{if .Message}}<p>{{.Message}}</p>{{end}}
        </div>
    </body>
</html>
{{end}}

{{define "approved"}}
<html>
    {{template "head"}}
    <body style="font-family: Arial, sans-serif; text-align: center; padding: 50px; background: #f5f5f5;">
        <div style="background: white; padding: 40px; border-radius: 10px; box-shadow: 0 2px 10px rgba(0,0,0,0.1); max-width: 500px; margin: 0 auto;">
            <h2 style="color: #1db954;">Artist Approved</h2>
            <p><strong>Artist:</strong> {{.Artist.ArtistName}}</p>
            <p><strong>Email:</strong> {{.Artist.Email}}</p>
            {{if .EmailSent}}
            <p style="color: #28a745;">The login credentials were emailed to the artist.</p>
            {{else}}
            <p style="color: #dc3545;">The email could not be sent, but the approval is complete.</p>
            <p><strong>Temporary Password:</strong> <code>{{.TempPassword}}</code></p>
            <p><small>Please forward the password to the artist manually.</small></p>
            {{end}}
            <hr style="margin: 20px 0;">
            <p><small>You can close this window.</small></p>
        </div>
    </body>
</html>
{{end}}

{{define "reject_form"}}
<html>
    {{template "head"}}
    <body style="font-family: Arial, sans-serif; padding: 20px; background: #f5f5f5;">
        <div style="max-width: 600px; margin: 0 auto; background: white; padding: 40px; border-radius: 10px;">
            <h2 style="color: #e22134;">Reject Artist Application</h2>
            <div style="background: #f8f9fa; padding: 20px; border-radius: 8px; margin: 20px 0;">
                <p><strong>Artist:</strong> {{.Artist.ArtistName}}</p>
                <p><strong>Email:</strong> {{.Artist.Email}}</p>
                <p><strong>Phone:</strong> {{.Artist.Phone}}</p>
                <p><strong>Social Media:</strong> <a href="{{.Artist.SocialMediaLink}}" target="_blank">{{.Artist.SocialMediaLink}}</a></p>
                {{if .Artist.Bio}}<p><strong>Biography:</strong> {{.Artist.Bio}}</p>{{end}}
            </div>

            <form method="POST" action="/admin/reject-artist-confirm">
                <input type="hidden" name="email" value="{{.Email}}">
                <div style="margin-bottom: 20px;">
                    <label style="display: block; margin-bottom: 8px; font-weight: bold;">Rejection Reason:</label>
                    <textarea name="reason" rows="4" style="width: 100%; padding: 10px; border: 1px solid #ddd; border-radius: 4px;" placeholder="Explain why the application is rejected..." required></textarea>
                </div>
                <div style="text-align: center;">
                    <button type="submit" style="background: #e22134; color: white; padding: 12px 30px; border: none; border-radius: 5px; cursor: pointer; font-size: 16px;">
                        Reject Application
                    </button>
                </div>
            </form>
        </div>
    </body>
</html>
{{end}}

{{define "rejected"}}
<html>
    {{template "head"}}
    <body style="font-family: Arial, sans-serif; text-align: center; padding: 50px; background: #f5f5f5;">
        <div style="background: white; padding: 40px; border-radius: 10px; box-shadow: 0 2px 10px rgba(0,0,0,0.1); max-width: 500px; margin: 0 auto;">
            <h2 style="color: #e22134;">Application Rejected</h2>
            <p><strong>Artist:</strong> {{.Artist.ArtistName}}</p>
            <p><strong>Email:</strong> {{.Email}}</p>
            <p><strong>Reason:</strong> {{.Reason}}</p>
            {{if .EmailSent}}
            <p style="color: #28a745;">The artist was notified by email.</p>
            {{else}}
            <p style="color: #dc3545;">The email could not be sent, but the rejection is complete. Please notify the artist manually.</p>
            {{end}}
            <hr style="margin: 20px 0;">
            <p><small>You can close this window.</small></p>
        </div>
    </body>
</html>
{{end}}
`
