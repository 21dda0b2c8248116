package http

// Signup godoc
// @Summary Create account
// @Description Create a shopper account and get a JWT token
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body object{email=string,password=string,name=string} true "Account data"
// @Success 201 {object} object{token=string,user=object}
// @Failure 400 {object} object{error=string}
// @Router /auth/signup [post]
func (h *IdentityHandler) SignupDoc() {}

// Login godoc
// @Summary Login
// @Description Authenticate a shopper and get a JWT token
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body object{email=string,password=string} true "Login credentials"
// @Success 200 {object} object{token=string,user=object}
// @Failure 401 {object} object{error=string}
// @Router /auth/login [post]
func (h *IdentityHandler) LoginDoc() {}

// Logout godoc
// @Summary Logout
// @Description Discard the session on the client side
// @Tags Auth
// @Produce json
// @Success 200 {object} object{message=string}
// @Router /auth/logout [post]
func (h *IdentityHandler) LogoutDoc() {}

// GetProfile godoc
// @Summary Get current profile
// @Description Get the authenticated shopper's profile
// @Tags Users
// @Security BearerAuth
// @Produce json
// @Success 200 {object} object{id=int,email=string,name=string,avatar=string,role=string}
// @Failure 401 {object} object{error=string}
// @Failure 404 {object} object{error=string}
// @Router /users/me [get]
func (h *IdentityHandler) GetProfileDoc() {}

// UpdateProfile godoc
// @Summary Update current profile
// @Description Update the authenticated shopper's name and avatar
// @Tags Users
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body object{name=string,avatar=string} true "Profile data"
// @Success 200 {object} object{id=int,email=string,name=string,avatar=string}
// @Failure 400 {object} object{error=string}
// @Failure 401 {object} object{error=string}
// @Router /users/me [put]
func (h *IdentityHandler) UpdateProfileDoc() {}
