package artist

type ApplicationRequest struct {
	ArtistName      string `json:"artistName" binding:"required"`
	Email           string `json:"email" binding:"required,email"`
	BirthDate       string `json:"birthDate" binding:"required"`
	Phone           string `json:"phone" binding:"required"`
	SocialMediaLink string `json:"socialMediaLink" binding:"required,url"`
	Bio             string `json:"bio"`
}
