package i18n

// Key identifies one UI string in the fixed enumeration. Both language tables
// cover every key.
type Key string

const (
	// Common
	KeyLoading Key = "loading"
	KeyError   Key = "error"
	KeyCancel  Key = "cancel"
	KeyOK      Key = "ok"
	KeySave    Key = "save"
	KeyDelete  Key = "delete"
	KeyEdit    Key = "edit"
	KeySearch  Key = "search"

	// Home screen
	KeyWelcome                 Key = "welcome"
	KeyWelcomeBack             Key = "welcomeBack"
	KeySearchPlaceholder       Key = "searchPlaceholder"
	KeyShopByCategory          Key = "shopByCategory"
	KeyQuickActions            Key = "quickActions"
	KeyFeaturedProducts        Key = "featuredProducts"
	KeyViewAllProducts         Key = "viewAllProducts"
	KeyRecentOrders            Key = "recentOrders"
	KeyWhyChooseAgriConnect    Key = "whyChooseAgriConnect"
	KeyFreshOrganic            Key = "freshOrganic"
	KeyFreshOrganicDesc        Key = "freshOrganicDesc"
	KeySupportLocalFarmers     Key = "supportLocalFarmers"
	KeySupportLocalFarmersDesc Key = "supportLocalFarmersDesc"
	KeyFastDelivery            Key = "fastDelivery"
	KeyFastDeliveryDesc        Key = "fastDeliveryDesc"

	// Product
	KeyAddToCart      Key = "addToCart"
	KeyProductDetails Key = "productDetails"
	KeyPrice          Key = "price"
	KeyFarmer         Key = "farmer"
	KeyCategory       Key = "category"
	KeyLocation       Key = "location"
	KeyDescription    Key = "description"
	KeyAddedToCart    Key = "addedToCart"

	// Categories
	KeyVegetables Key = "vegetables"
	KeyFruits     Key = "fruits"
	KeyGrains     Key = "grains"
	KeyHerbs      Key = "herbs"
	KeyDairy      Key = "dairy"
	KeyOrganic    Key = "organic"

	// Quick actions
	KeyAddProduct Key = "addProduct"
	KeyMyCart     Key = "myCart"
	KeyMyOrders   Key = "myOrders"
	KeyMessages   Key = "messages"

	// Auth
	KeySignIn   Key = "signIn"
	KeySignUp   Key = "signUp"
	KeyEmail    Key = "email"
	KeyPassword Key = "password"
	KeyName     Key = "name"
	KeyLogout   Key = "logout"

	// Order status
	KeyDelivered Key = "delivered"
	KeyPending   Key = "pending"
	KeyConfirmed Key = "confirmed"
	KeyShipped   Key = "shipped"
	KeyCancelled Key = "cancelled"

	// Misc
	KeyItems             Key = "items"
	KeyProductsFound     Key = "productsFound"
	KeyNoProductsFound   Key = "noProductsFound"
	KeyTryAgain          Key = "tryAgain"
	KeyImageNotAvailable Key = "imageNotAvailable"
	KeyCurrency          Key = "currency"

	// Cart
	KeyCartEmpty           Key = "cartEmpty"
	KeyRemoveFromCart      Key = "removeFromCart"
	KeyProceedToCheckout   Key = "proceedToCheckout"
	KeyContinueShopping    Key = "continueShopping"
	KeyOrderSummary        Key = "orderSummary"
	KeySubtotal            Key = "subtotal"
	KeyDeliveryFee         Key = "deliveryFee"
	KeyTotal               Key = "total"
	KeyDeliveryInformation Key = "deliveryInformation"
	KeyEstimatedDelivery   Key = "estimatedDelivery"
)

// AllKeys enumerates the complete UI key set in display-group order.
var AllKeys = []Key{
	KeyLoading, KeyError, KeyCancel, KeyOK, KeySave, KeyDelete, KeyEdit, KeySearch,
	KeyWelcome, KeyWelcomeBack, KeySearchPlaceholder, KeyShopByCategory, KeyQuickActions,
	KeyFeaturedProducts, KeyViewAllProducts, KeyRecentOrders, KeyWhyChooseAgriConnect,
	KeyFreshOrganic, KeyFreshOrganicDesc, KeySupportLocalFarmers, KeySupportLocalFarmersDesc,
	KeyFastDelivery, KeyFastDeliveryDesc,
	KeyAddToCart, KeyProductDetails, KeyPrice, KeyFarmer, KeyCategory, KeyLocation,
	KeyDescription, KeyAddedToCart,
	KeyVegetables, KeyFruits, KeyGrains, KeyHerbs, KeyDairy, KeyOrganic,
	KeyAddProduct, KeyMyCart, KeyMyOrders, KeyMessages,
	KeySignIn, KeySignUp, KeyEmail, KeyPassword, KeyName, KeyLogout,
	KeyDelivered, KeyPending, KeyConfirmed, KeyShipped, KeyCancelled,
	KeyItems, KeyProductsFound, KeyNoProductsFound, KeyTryAgain, KeyImageNotAvailable,
	KeyCurrency,
	KeyCartEmpty, KeyRemoveFromCart, KeyProceedToCheckout, KeyContinueShopping,
	KeyOrderSummary, KeySubtotal, KeyDeliveryFee, KeyTotal, KeyDeliveryInformation,
	KeyEstimatedDelivery,
}

var uiStrings = map[Language]map[Key]string{
	LangEnglish: {
		KeyLoading: "Loading...",
		KeyError:   "Error",
		KeyCancel:  "Cancel",
		KeyOK:      "OK",
		KeySave:    "Save",
		KeyDelete:  "Delete",
		KeyEdit:    "Edit",
		KeySearch:  "Search",

		KeyWelcome:                 "Welcome",
		KeyWelcomeBack:             "Welcome back",
		KeySearchPlaceholder:       "Search for fresh produce...",
		KeyShopByCategory:          "Shop by Category",
		KeyQuickActions:            "Quick Actions",
		KeyFeaturedProducts:        "Featured Products",
		KeyViewAllProducts:         "View All Products",
		KeyRecentOrders:            "Recent Orders",
		KeyWhyChooseAgriConnect:    "Why Choose AgriConnect?",
		KeyFreshOrganic:            "Fresh & Organic",
		KeyFreshOrganicDesc:        "Get the freshest produce directly from local farms, ensuring quality and nutritional value.",
		KeySupportLocalFarmers:     "Support Local Farmers",
		KeySupportLocalFarmersDesc: "Connect directly with farmers in your area and support sustainable agriculture practices.",
		KeyFastDelivery:            "Fast Delivery",
		KeyFastDeliveryDesc:        "Enjoy quick and reliable delivery service that brings farm-fresh products to your door.",

		KeyAddToCart:      "Add to Cart",
		KeyProductDetails: "Product Details",
		KeyPrice:          "Price",
		KeyFarmer:         "Farmer",
		KeyCategory:       "Category",
		KeyLocation:       "Location",
		KeyDescription:    "Description",
		KeyAddedToCart:    "Added to cart successfully!",

		KeyVegetables: "Vegetables",
		KeyFruits:     "Fruits",
		KeyGrains:     "Grains",
		KeyHerbs:      "Herbs",
		KeyDairy:      "Dairy",
		KeyOrganic:    "Organic",

		KeyAddProduct: "Add Product",
		KeyMyCart:     "My Cart",
		KeyMyOrders:   "My Orders",
		KeyMessages:   "Messages",

		KeySignIn:   "Sign In",
		KeySignUp:   "Sign Up",
		KeyEmail:    "Email",
		KeyPassword: "Password",
		KeyName:     "Name",
		KeyLogout:   "Logout",

		KeyDelivered: "Delivered",
		KeyPending:   "Pending",
		KeyConfirmed: "Confirmed",
		KeyShipped:   "Shipped",
		KeyCancelled: "Cancelled",

		KeyItems:             "items",
		KeyProductsFound:     "products found",
		KeyNoProductsFound:   "No products found",
		KeyTryAgain:          "Try Again",
		KeyImageNotAvailable: "Image not available",
		KeyCurrency:          "৳",

		KeyCartEmpty:           "Your cart is empty",
		KeyRemoveFromCart:      "Remove from cart",
		KeyProceedToCheckout:   "Proceed to Checkout",
		KeyContinueShopping:    "Continue Shopping",
		KeyOrderSummary:        "Order Summary",
		KeySubtotal:            "Subtotal",
		KeyDeliveryFee:         "Delivery Fee",
		KeyTotal:               "Total",
		KeyDeliveryInformation: "Delivery Information",
		KeyEstimatedDelivery:   "Fresh products delivered directly from local farms. Estimated delivery: 2-3 business days.",
	},
	LangBangla: {
		KeyLoading: "লোড হচ্ছে...",
		KeyError:   "ত্রুটি",
		KeyCancel:  "বাতিল",
		KeyOK:      "ঠিক আছে",
		KeySave:    "সংরক্ষণ",
		KeyDelete:  "মুছুন",
		KeyEdit:    "সম্পাদনা",
		KeySearch:  "খুঁজুন",

		KeyWelcome:                 "স্বাগতম",
		KeyWelcomeBack:             "আবার স্বাগতম",
		KeySearchPlaceholder:       "তাজা পণ্যের জন্য খুঁজুন...",
		KeyShopByCategory:          "শ্রেণী অনুযায়ী কিনুন",
		KeyQuickActions:            "দ্রুত কার্যক্রম",
		KeyFeaturedProducts:        "বৈশিষ্ট্যযুক্ত পণ্য",
		KeyViewAllProducts:         "সব পণ্য দেখুন",
		KeyRecentOrders:            "সাম্প্রতিক অর্ডার",
		KeyWhyChooseAgriConnect:    "কেন AgriConnect বেছে নিবেন?",
		KeyFreshOrganic:            "তাজা ও জৈব",
		KeyFreshOrganicDesc:        "স্থানীয় খামার থেকে সরাসরি সবচেয়ে তাজা পণ্য পান, গুণমান এবং পুষ্টিগুণ নিশ্চিত করে।",
		KeySupportLocalFarmers:     "স্থানীয় কৃষকদের সহায়তা করুন",
		KeySupportLocalFarmersDesc: "আপনার এলাকার কৃষকদের সাথে সরাসরি যোগাযোগ করুন এবং টেকসই কৃষি অনুশীলনে সহায়তা করুন।",
		KeyFastDelivery:            "দ্রুত ডেলিভারি",
		KeyFastDeliveryDesc:        "দ্রুত এবং নির্ভরযোগ্য ডেলিভারি সেবা উপভোগ করুন যা খামার-তাজা পণ্য আপনার দোরগোড়ায় পৌঁছে দেয়।",

		KeyAddToCart:      "কার্টে যোগ করুন",
		KeyProductDetails: "পণ্যের বিবরণ",
		KeyPrice:          "মূল্য",
		KeyFarmer:         "কৃষক",
		KeyCategory:       "শ্রেণী",
		KeyLocation:       "অবস্থান",
		KeyDescription:    "বর্ণনা",
		KeyAddedToCart:    "সফলভাবে কার্টে যোগ করা হয়েছে!",

		KeyVegetables: "সবজি",
		KeyFruits:     "ফল",
		KeyGrains:     "শস্য",
		KeyHerbs:      "ভেষজ",
		KeyDairy:      "দুগ্ধজাত",
		KeyOrganic:    "জৈব",

		KeyAddProduct: "পণ্য যোগ করুন",
		KeyMyCart:     "আমার কার্ট",
		KeyMyOrders:   "আমার অর্ডার",
		KeyMessages:   "বার্তা",

		KeySignIn:   "সাইন ইন",
		KeySignUp:   "সাইন আপ",
		KeyEmail:    "ইমেইল",
		KeyPassword: "পাসওয়ার্ড",
		KeyName:     "নাম",
		KeyLogout:   "লগআউট",

		KeyDelivered: "সরবরাহ করা হয়েছে",
		KeyPending:   "অপেক্ষমান",
		KeyConfirmed: "নিশ্চিত",
		KeyShipped:   "পাঠানো হয়েছে",
		KeyCancelled: "বাতিল",

		KeyItems:             "আইটেম",
		KeyProductsFound:     "পণ্য পাওয়া গেছে",
		KeyNoProductsFound:   "কোন পণ্য পাওয়া যায়নি",
		KeyTryAgain:          "আবার চেষ্টা করুন",
		KeyImageNotAvailable: "ছবি উপলব্ধ নেই",
		KeyCurrency:          "৳",

		KeyCartEmpty:           "আপনার কার্ট খালি",
		KeyRemoveFromCart:      "কার্ট থেকে সরান",
		KeyProceedToCheckout:   "চেকআউটে এগিয়ে যান",
		KeyContinueShopping:    "কেনাকাটা চালিয়ে যান",
		KeyOrderSummary:        "অর্ডার সারসংক্ষেপ",
		KeySubtotal:            "উপমোট",
		KeyDeliveryFee:         "ডেলিভারি ফি",
		KeyTotal:               "মোট",
		KeyDeliveryInformation: "ডেলিভারি তথ্য",
		KeyEstimatedDelivery:   "স্থানীয় খামার থেকে সরাসরি তাজা পণ্য সরবরাহ। আনুমানিক ডেলিভারি: ২-৩ কার্যদিবস।",
	},
}

// ProductTranslation is the localized display name and description for one
// canonical catalog product.
type ProductTranslation struct {
	Name        string
	Description string
}

// HasProductTranslation reports whether the canonical catalog name carries a
// curated translation entry, returning the default-language entry when it does.
func HasProductTranslation(canonicalName string) (ProductTranslation, bool) {
	entry, ok := productStrings[DefaultLanguage][canonicalName]
	return entry, ok
}

// genericProductDescription is served when a product has no translation
// entry. It is deliberately language-invariant, matching the mobile app.
const genericProductDescription = "Fresh and high-quality agricultural product sourced directly from local farmers."

var productStrings = map[Language]map[string]ProductTranslation{
	LangEnglish: {
		"Fresh Organic Tomatoes": {
			Name:        "Tomatoes",
			Description: "High-quality agricultural product sourced directly from local farms, ensuring quality and nutritional value.",
		},
		"Sweet Corn": {
			Name:        "Corn",
			Description: "Sweet and tender corn kernels, perfect for cooking and healthy eating.",
		},
		"Mixed Leafy Greens": {
			Name:        "Leafy Greens",
			Description: "Mix of nutritious leafy vegetables, rich in vitamins and minerals.",
		},
		"Farm Fresh Carrots": {
			Name:        "Carrots",
			Description: "Crisp and sweet carrots, harvested from farms.",
		},
		"Fresh Strawberries": {
			Name:        "Strawberries",
			Description: "Juicy and sweet strawberries, packed with vitamins and antioxidants.",
		},
		"Organic Bell Peppers": {
			Name:        "Bell Peppers",
			Description: "Colorful and crunchy bell peppers, grown without pesticides.",
		},
		"Fresh Avocados": {
			Name:        "Avocados",
			Description: "Creamy and nutritious avocados, perfect for healthy meals.",
		},
		"Organic Broccoli": {
			Name:        "Broccoli",
			Description: "Green broccoli, rich in nutrients and vitamins.",
		},
		"Fresh Blueberries": {
			Name:        "Blueberries",
			Description: "Sweet and antioxidant-rich blueberries, perfect for healthy snacking.",
		},
		"Organic Spinach": {
			Name:        "Spinach",
			Description: "Tender spinach leaves, packed with iron and vitamins.",
		},
		"Fresh Pineapples": {
			Name:        "Pineapples",
			Description: "Sweet and tropical pineapples, rich in vitamins and enzymes.",
		},
		"Organic Cucumbers": {
			Name:        "Cucumbers",
			Description: "Crisp and refreshing cucumbers, perfect for salads and healthy eating.",
		},
		"Quinoa": {
			Name:        "Quinoa",
			Description: "Nutritious and protein-rich quinoa seeds, perfect for healthy cooking.",
		},
		"Brown Rice": {
			Name:        "Rice",
			Description: "Whole grain rice, rich in fiber and nutrients.",
		},
		"Fresh Basil": {
			Name:        "Basil",
			Description: "Aromatic basil leaves, perfect for cooking and garnishing.",
		},
		"Organic Rosemary": {
			Name:        "Rosemary",
			Description: "Fragrant rosemary herbs, ideal for cooking and seasoning.",
		},
		"Fresh Milk": {
			Name:        "Milk",
			Description: "Pure milk from healthy cows, rich in calcium and proteins.",
		},
		"Organic Cheese": {
			Name:        "Cheese",
			Description: "Artisanal cheese, made from the finest milk with traditional methods.",
		},
	},
	LangBangla: {
		"Fresh Organic Tomatoes": {
			Name:        "টমেটো",
			Description: "স্থানীয় খামার থেকে সরাসরি তাজা ও উচ্চমানের কৃষি পণ্য, গুণমান ও পুষ্টিগুণ নিশ্চিত করে।",
		},
		"Sweet Corn": {
			Name:        "ভুট্টা",
			Description: "মিষ্টি ও নরম ভুট্টার দানা, রান্না ও সুস্বাস্থ্যকর খাওয়ার জন্য নিখুঁত।",
		},
		"Mixed Leafy Greens": {
			Name:        "পাতা শাক",
			Description: "ভিটামিন ও খনিজ পদার্থে ভরপুর, পুষ্টিকর পাতায় শাকের তাজা মিশ্রণ।",
		},
		"Farm Fresh Carrots": {
			Name:        "গাজর",
			Description: "জৈব খামার থেকে তাজা কাটা কুমড়া ও মিষ্টি গাজর।",
		},
		"Fresh Strawberries": {
			Name:        "স্ট্রবেরি",
			Description: "ভিটামিন ও অ্যান্টিঅক্সিডেন্ট ভরপুর রসালো ও মিষ্টি স্ট্রবেরি।",
		},
		"Organic Bell Peppers": {
			Name:        "মরিচ",
			Description: "কীটনাশক ছাড়া জৈবিক পদ্ধতিতে বাড়ানো রঙিন ও কুমড়া মরিচ।",
		},
		"Fresh Avocados": {
			Name:        "অ্যাভোকাডো",
			Description: "সুস্বাস্থ্যকর খাবারের জন্য নিখুঁত ক্রিমি ও পুষ্টিকর অ্যাভোকাডো।",
		},
		"Organic Broccoli": {
			Name:        "ব্রকলি",
			Description: "পুষ্টি ও ভিটামিনে ভরপুর তাজা ও সবুজ ব্রকলি।",
		},
		"Fresh Blueberries": {
			Name:        "ব্লুবেরি",
			Description: "সুস্বাস্থ্যকর নাস্তার জন্য নিখুঁত মিষ্টি ও অ্যান্টিঅক্সিডেন্ট সমৃদ্ধ ব্লুবেরি।",
		},
		"Organic Spinach": {
			Name:        "পালং শাক",
			Description: "আয়রন ও ভিটামিনে ভরপুর তাজা ও নরম পালং শাকের পাতা।",
		},
		"Fresh Pineapples": {
			Name:        "আনারস",
			Description: "ভিটামিন ও এনজাইমে ভরপুর মিষ্টি ও ক্রান্তীয় আনারস।",
		},
		"Organic Cucumbers": {
			Name:        "শসা",
			Description: "সালাদ ও সুস্বাস্থ্যকর খাবারের জন্য নিখুঁত কুমড়া ও সতেজ শসা।",
		},
		"Quinoa": {
			Name:        "কিনোয়া",
			Description: "সুস্বাস্থ্যকর রান্নার জন্য নিখুঁত পুষ্টিকর ও প্রোটিন সমৃদ্ধ কিনোয়ার বীজ।",
		},
		"Brown Rice": {
			Name:        "চাল",
			Description: "ফাইবার ও পুষ্টিতে ভরপুর সম্পূর্ণ শস্য ব্রাউন রাইস।",
		},
		"Fresh Basil": {
			Name:        "তুলসী পাতা",
			Description: "রান্না ও সাজানোর জন্য নিখুঁত সুগন্ধি ও তাজা তুলসীর পাতা।",
		},
		"Organic Rosemary": {
			Name:        "রোজমেরি",
			Description: "রান্না ও মসলার জন্য আদর্শ তাজা ও সুগন্ধি রোজমেরি ভেষজ।",
		},
		"Fresh Milk": {
			Name:        "দুধ",
			Description: "ক্যালসিয়াম ও প্রোটিনে ভরপুর সুস্থ গায়ের শুদ্ধ ও তাজা দুধ।",
		},
		"Organic Cheese": {
			Name:        "চিজ",
			Description: "নিখুঁত দুধ দিয়ে তৈরি শিল্পকলার জৈব চিজ, তৈরি হয়েছে ত্রাদিসিয়াল পদ্ধতিতে।",
		},
	},
}
